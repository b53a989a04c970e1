package breeding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"breed-registry/internal/domain/animals"
	"breed-registry/internal/domain/breeders"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("breeding event not found")
	ErrBreederNotFound = errors.New("breeder not found")

	ErrInvalidDam       = fmt.Errorf("%w: invalid dam id", ErrInvalidInput)
	ErrInvalidSire      = fmt.Errorf("%w: invalid sire id", ErrInvalidInput)
	ErrInvalidOffspring = fmt.Errorf("%w: invalid offspring id", ErrInvalidInput)
)

type BreederDirectory interface {
	GetByID(ctx context.Context, id string) (breeders.Breeder, error)
}

type AnimalLookup interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
}

type Service struct {
	repo     Repository
	breeders BreederDirectory
	animals  AnimalLookup
	now      func() time.Time
}

func NewService(repo Repository, dir BreederDirectory, lookup AnimalLookup) *Service {
	return &Service{
		repo:     repo,
		breeders: dir,
		animals:  lookup,
		now:      time.Now,
	}
}

type CreateInput struct {
	Method          Method
	DamID           string
	SireID          string
	OffspringID     string
	BreedingDate    time.Time
	ExpectedDueDate *time.Time

	SemenSource  string
	AITechnician string
	BatchNumber  string
	DonorDam     string
	EmbryoID     string
	Notes        string
}

func (s *Service) Create(ctx context.Context, breederID string, in CreateInput) (Event, error) {
	b, err := s.owner(ctx, breederID)
	if err != nil {
		return Event{}, err
	}

	if !in.Method.Valid() || in.BreedingDate.IsZero() {
		return Event{}, ErrInvalidInput
	}
	if in.ExpectedDueDate != nil && !in.ExpectedDueDate.After(in.BreedingDate) {
		return Event{}, fmt.Errorf("%w: expected_due_date must be after breeding_date", ErrInvalidInput)
	}

	damID := strings.TrimSpace(in.DamID)
	if damID == "" {
		return Event{}, ErrInvalidDam
	}
	dam, err := s.owned(ctx, b.ID, damID, ErrInvalidDam)
	if err != nil {
		return Event{}, err
	}
	if dam.Gender != animals.GenderFemale {
		return Event{}, ErrInvalidDam
	}

	var sireID *string
	if id := strings.TrimSpace(in.SireID); id != "" {
		sire, err := s.owned(ctx, b.ID, id, ErrInvalidSire)
		if err != nil {
			return Event{}, err
		}
		if sire.Gender != animals.GenderMale {
			return Event{}, ErrInvalidSire
		}
		sireID = &sire.ID
	}

	var offspringID *string
	if id := strings.TrimSpace(in.OffspringID); id != "" {
		off, err := s.owned(ctx, b.ID, id, ErrInvalidOffspring)
		if err != nil {
			return Event{}, err
		}
		if off.ID == dam.ID || (sireID != nil && off.ID == *sireID) {
			return Event{}, ErrInvalidOffspring
		}
		offspringID = &off.ID
	}

	e := Event{
		ID:              uuid.NewString(),
		BreederID:       b.ID,
		Method:          in.Method,
		DamID:           dam.ID,
		SireID:          sireID,
		OffspringID:     offspringID,
		BreedingDate:    in.BreedingDate,
		ExpectedDueDate: in.ExpectedDueDate,
		SemenSource:     strings.TrimSpace(in.SemenSource),
		AITechnician:    strings.TrimSpace(in.AITechnician),
		BatchNumber:     strings.TrimSpace(in.BatchNumber),
		DonorDam:        strings.TrimSpace(in.DonorDam),
		EmbryoID:        strings.TrimSpace(in.EmbryoID),
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       s.now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, breederID, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrNotFound
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if e.BreederID != breederID {
		return Event{}, ErrNotFound
	}
	return e, nil
}

func (s *Service) ListByBreeder(ctx context.Context, breederID string, filter ListFilter) ([]Event, error) {
	b, err := s.owner(ctx, breederID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByBreeder(ctx, b.ID, filter)
}

// owned devuelve el animal si existe y pertenece a breederID; si no, invalid.
func (s *Service) owned(ctx context.Context, breederID, id string, invalid error) (animals.Animal, error) {
	a, err := s.animals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			return animals.Animal{}, invalid
		}
		return animals.Animal{}, err
	}
	if a.BreederID != breederID {
		return animals.Animal{}, invalid
	}
	return a, nil
}

func (s *Service) owner(ctx context.Context, breederID string) (breeders.Breeder, error) {
	b, err := s.breeders.GetByID(ctx, strings.TrimSpace(breederID))
	if err != nil {
		if errors.Is(err, breeders.ErrNotFound) {
			return breeders.Breeder{}, ErrBreederNotFound
		}
		return breeders.Breeder{}, err
	}
	return b, nil
}

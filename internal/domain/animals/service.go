package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"breed-registry/internal/domain/breeders"
	"breed-registry/internal/domain/identifiers"

	"github.com/google/uuid"
)

const (
	// maxInsertAttempts acota los reintentos cuando otro proceso tomó el mismo animal_id.
	maxInsertAttempts = 5

	DefaultGenerations = 3
	MaxGenerations     = 10
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("animal not found")
	ErrBreederNotFound = errors.New("breeder not found")
	ErrConflict        = errors.New("conflict")

	ErrInvalidSire   = fmt.Errorf("%w: invalid sire id", ErrInvalidInput)
	ErrInvalidDam    = fmt.Errorf("%w: invalid dam id", ErrInvalidInput)
	ErrAnimalIDTaken = fmt.Errorf("%w: animal id already exists", ErrConflict)
)

// BreederDirectory resuelve el breeder dueño (y su farm prefix).
type BreederDirectory interface {
	GetByID(ctx context.Context, id string) (breeders.Breeder, error)
}

type Service struct {
	repo     Repository
	breeders BreederDirectory
	alloc    *identifiers.Allocator
	now      func() time.Time
}

func NewService(repo Repository, dir BreederDirectory, alloc *identifiers.Allocator) *Service {
	return &Service{
		repo:     repo,
		breeders: dir,
		alloc:    alloc,
		now:      time.Now,
	}
}

type CreateInput struct {
	AnimalType  AnimalType
	Breed       string
	Gender      Gender
	DateOfBirth *time.Time
	SireID      string
	DamID       string
}

func (s *Service) Create(ctx context.Context, breederID string, in CreateInput) (Animal, error) {
	b, err := s.owner(ctx, breederID)
	if err != nil {
		return Animal{}, err
	}

	breed := strings.TrimSpace(in.Breed)
	if breed == "" || !validType(in.AnimalType) || !validGender(in.Gender) {
		return Animal{}, ErrInvalidInput
	}
	if in.DateOfBirth != nil && in.DateOfBirth.After(s.now()) {
		return Animal{}, fmt.Errorf("%w: date_of_birth is in the future", ErrInvalidInput)
	}

	sireID, err := s.parent(ctx, b.ID, in.SireID, GenderMale, ErrInvalidSire)
	if err != nil {
		return Animal{}, err
	}
	damID, err := s.parent(ctx, b.ID, in.DamID, GenderFemale, ErrInvalidDam)
	if err != nil {
		return Animal{}, err
	}

	// Lock por prefix: nadie más en este proceso lee "latest" hasta que
	// termine el insert. Entre procesos decide la unique constraint + retry.
	unlock := s.alloc.LockPrefix(b.FarmPrefix)
	defer unlock()

	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		var animalID string
		if attempt == 0 {
			animalID, err = s.alloc.AllocateAnimalID(ctx, b.FarmPrefix, s.repo)
		} else {
			animalID, err = s.alloc.AllocateAfterConflict(ctx, b.FarmPrefix, s.repo)
		}
		if err != nil {
			return Animal{}, err
		}

		a := Animal{
			ID:          uuid.NewString(),
			AnimalID:    animalID,
			BreederID:   b.ID,
			AnimalType:  in.AnimalType,
			Breed:       breed,
			Gender:      in.Gender,
			DateOfBirth: in.DateOfBirth,
			SireID:      sireID,
			DamID:       damID,
			CreatedAt:   s.now(),
		}

		err = s.repo.Create(ctx, a)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, ErrAnimalIDTaken) {
			return Animal{}, err
		}
		s.alloc.RecordRetry(b.FarmPrefix)
	}

	return Animal{}, ErrAnimalIDTaken
}

// parent valida sire/dam: debe existir, ser del mismo breeder y tener el sexo correcto.
func (s *Service) parent(ctx context.Context, breederID, id string, want Gender, invalid error) (*string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if p.BreederID != breederID || p.Gender != want {
		return nil, invalid
	}
	return &p.ID, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// OwnedBy devuelve el animal solo si pertenece a breederID.
func (s *Service) OwnedBy(ctx context.Context, breederID, id string) (Animal, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	if a.BreederID != breederID {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) ListByBreeder(ctx context.Context, breederID string, filter ListFilter) ([]Animal, error) {
	b, err := s.owner(ctx, breederID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByBreeder(ctx, b.ID, filter)
}

func (s *Service) CountByBreeder(ctx context.Context, breederID string) (int, error) {
	return s.repo.CountByBreeder(ctx, strings.TrimSpace(breederID))
}

// Lineage recorre sire/dam hacia arriba hasta generations niveles.
func (s *Service) Lineage(ctx context.Context, animalID string, generations int) ([]LineageEntry, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, ErrNotFound
	}
	if generations <= 0 {
		generations = DefaultGenerations
	}
	if generations > MaxGenerations {
		generations = MaxGenerations
	}

	out, err := s.repo.Lineage(ctx, animalID, generations)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *Service) BreedSummary(ctx context.Context, breed string) ([]BreedSummary, error) {
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return nil, ErrInvalidInput
	}
	out, err := s.repo.BreedSummary(ctx, breed)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *Service) owner(ctx context.Context, breederID string) (breeders.Breeder, error) {
	b, err := s.breeders.GetByID(ctx, breederID)
	if err != nil {
		if errors.Is(err, breeders.ErrNotFound) {
			return breeders.Breeder{}, ErrBreederNotFound
		}
		return breeders.Breeder{}, err
	}
	return b, nil
}

func validType(t AnimalType) bool {
	switch t {
	case TypeCattle, TypeSheep, TypeGoat, TypePig, TypeHorse, TypeOther:
		return true
	}
	return false
}

func validGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

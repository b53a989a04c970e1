package breeders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"breed-registry/internal/domain/identifiers"
	"breed-registry/internal/platform/password"

	"github.com/google/uuid"
)

// maxRegisterAttempts acota los reintentos de insert cuando el prefix derivado
// fue tomado por otro registro concurrente.
const maxRegisterAttempts = 3

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("breeder not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken      = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrNationalIDTaken = fmt.Errorf("%w: national id already registered", ErrConflict)
	ErrFarmPrefixTaken = fmt.Errorf("%w: farm prefix already taken", ErrConflict)
	ErrHasAnimals      = fmt.Errorf("%w: breeder has registered animals", ErrConflict)
)

type Service struct {
	repo   Repository
	alloc  *identifiers.Allocator
	hasher *password.Hasher
	now    func() time.Time

	onStatus func(Status)
}

func NewService(repo Repository, alloc *identifiers.Allocator, hasher *password.Hasher) *Service {
	return &Service{
		repo:   repo,
		alloc:  alloc,
		hasher: hasher,
		now:    time.Now,
	}
}

// OnStatusChange registra un callback (métricas) para registros y revisiones.
func (s *Service) OnStatusChange(fn func(Status)) {
	s.onStatus = fn
}

type RegisterInput struct {
	FullName     string
	NationalID   string
	BreederType  BreederType
	FarmName     string
	FarmPrefix   string // opcional; si viene vacío se deriva del nombre
	FarmLocation string
	County       string
	Phone        string
	Email        string
	Password     string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Breeder, error) {
	fullName := strings.TrimSpace(in.FullName)
	nationalID := strings.TrimSpace(in.NationalID)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if fullName == "" || nationalID == "" || email == "" || in.Password == "" {
		return Breeder{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FarmLocation) == "" || strings.TrimSpace(in.Phone) == "" {
		return Breeder{}, ErrInvalidInput
	}

	btype := in.BreederType
	if btype == "" {
		btype = TypeIndividual
	}
	if btype != TypeIndividual && btype != TypeCompany {
		return Breeder{}, ErrInvalidInput
	}

	// Chequeos previos para devolver un error claro; la restricción única
	// del repositorio sigue siendo la que manda ante carreras.
	if taken, err := s.repo.EmailExists(ctx, email); err != nil {
		return Breeder{}, err
	} else if taken {
		return Breeder{}, ErrEmailTaken
	}
	if taken, err := s.repo.NationalIDExists(ctx, nationalID); err != nil {
		return Breeder{}, err
	} else if taken {
		return Breeder{}, ErrNationalIDTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Breeder{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	b := Breeder{
		ID:           uuid.NewString(),
		FullName:     fullName,
		NationalID:   nationalID,
		BreederType:  btype,
		FarmName:     strings.TrimSpace(in.FarmName),
		FarmLocation: strings.TrimSpace(in.FarmLocation),
		County:       strings.TrimSpace(in.County),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        email,
		PasswordHash: hash,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Un prefix derivado puede perderse contra un registro concurrente entre
	// el chequeo y el insert; se vuelve a derivar. Uno explícito falla directo.
	derived := strings.TrimSpace(in.FarmPrefix) == ""
	for attempt := 1; ; attempt++ {
		prefix, err := s.resolvePrefix(ctx, fullName, in.FarmPrefix)
		if err != nil {
			return Breeder{}, err
		}
		b.FarmPrefix = prefix

		err = s.repo.Create(ctx, b)
		if err == nil {
			break
		}
		if !derived || !errors.Is(err, ErrFarmPrefixTaken) || attempt >= maxRegisterAttempts {
			return Breeder{}, err
		}
	}

	s.statusChanged(b.Status)
	return b, nil
}

func (s *Service) resolvePrefix(ctx context.Context, fullName, explicit string) (string, error) {
	if strings.TrimSpace(explicit) == "" {
		p, err := s.alloc.FarmPrefix(ctx, fullName, s.repo)
		if errors.Is(err, identifiers.ErrPrefixExhausted) {
			return "", fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return p, err
	}

	p, err := identifiers.NormalizePrefix(explicit)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	taken, err := s.repo.FarmPrefixExists(ctx, p)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrFarmPrefixTaken
	}
	return p, nil
}

// Authenticate valida credenciales (identifier = email o national_id).
// No emite tokens: solo confirma.
func (s *Service) Authenticate(ctx context.Context, identifier, plain string) (Breeder, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plain == "" {
		return Breeder{}, ErrInvalidCredentials
	}
	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}

	b, err := s.repo.GetByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Breeder{}, ErrInvalidCredentials
		}
		return Breeder{}, err
	}
	if err := s.hasher.Verify(b.PasswordHash, plain); err != nil {
		return Breeder{}, ErrInvalidCredentials
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Breeder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breeder{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Breeder, error) {
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByStatus(ctx, status)
}

// Approve marca al breeder como aprobado por adminID.
func (s *Service) Approve(ctx context.Context, breederID, adminID string) (Breeder, error) {
	return s.review(ctx, breederID, adminID, StatusApproved, "")
}

// Reject marca al breeder como rechazado por adminID. reason es opcional.
func (s *Service) Reject(ctx context.Context, breederID, adminID, reason string) (Breeder, error) {
	return s.review(ctx, breederID, adminID, StatusRejected, reason)
}

func (s *Service) review(ctx context.Context, breederID, adminID string, to Status, reason string) (Breeder, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return Breeder{}, ErrInvalidInput
	}

	b, err := s.GetByID(ctx, breederID)
	if err != nil {
		return Breeder{}, err
	}

	// Idempotente: no re-estampa actor ni fecha.
	if b.Status == to {
		return b, nil
	}

	now := s.now()
	b.Status = to
	b.ReviewedBy = &adminID
	b.ReviewedAt = &now
	b.RejectionReason = ""
	if to == StatusRejected {
		b.RejectionReason = strings.TrimSpace(reason)
	}
	b.UpdatedAt = now

	if err := s.repo.Update(ctx, b); err != nil {
		return Breeder{}, err
	}
	s.statusChanged(to)
	return b, nil
}

// Delete elimina el breeder. El repositorio rechaza con ErrHasAnimals si
// todavía hay animales que lo referencian.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) statusChanged(st Status) {
	if s.onStatus != nil {
		s.onStatus(st)
	}
}

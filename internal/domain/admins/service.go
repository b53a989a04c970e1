package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"breed-registry/internal/domain/breeders"
	"breed-registry/internal/platform/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("admin not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)
)

// Reviewer es la parte de breeders.Service que usan los admins.
type Reviewer interface {
	ListByStatus(ctx context.Context, status breeders.Status) ([]breeders.Breeder, error)
	Approve(ctx context.Context, breederID, adminID string) (breeders.Breeder, error)
	Reject(ctx context.Context, breederID, adminID, reason string) (breeders.Breeder, error)
	Delete(ctx context.Context, id string) error
}

type AnimalCounter interface {
	CountByBreeder(ctx context.Context, breederID string) (int, error)
}

type Service struct {
	repo     Repository
	reviewer Reviewer
	animals  AnimalCounter
	hasher   *password.Hasher
	now      func() time.Time
}

func NewService(repo Repository, reviewer Reviewer, counter AnimalCounter, hasher *password.Hasher) *Service {
	return &Service{
		repo:     repo,
		reviewer: reviewer,
		animals:  counter,
		hasher:   hasher,
		now:      time.Now,
	}
}

type CreateInput struct {
	FullName string
	Email    string
	Password string
}

// Create da de alta un admin. actorID vacío solo se acepta mientras no
// exista ningún admin (bootstrap); después se exige un admin válido.
func (s *Service) Create(ctx context.Context, actorID string, in CreateInput) (Admin, error) {
	if strings.TrimSpace(actorID) == "" {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return Admin{}, err
		}
		if n > 0 {
			return Admin{}, ErrUnauthorized
		}
	} else if _, err := s.Resolve(ctx, actorID); err != nil {
		return Admin{}, err
	}

	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if fullName == "" || email == "" || in.Password == "" {
		return Admin{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Admin{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Admin{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Admin{}, fmt.Errorf("hash password: %w", err)
	}

	a := Admin{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleAdmin,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (s *Service) Authenticate(ctx context.Context, email, plain string) (Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plain == "" {
		return Admin{}, ErrInvalidCredentials
	}

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Admin{}, ErrInvalidCredentials
		}
		return Admin{}, err
	}
	if err := s.hasher.Verify(a.PasswordHash, plain); err != nil {
		return Admin{}, ErrInvalidCredentials
	}
	return a, nil
}

// Resolve convierte el actor autenticado en un Admin existente.
func (s *Service) Resolve(ctx context.Context, actorID string) (Admin, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return Admin{}, ErrUnauthorized
	}
	a, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Admin{}, ErrUnauthorized
		}
		return Admin{}, err
	}
	return a, nil
}

func (s *Service) Applications(ctx context.Context, status breeders.Status) ([]breeders.Breeder, error) {
	return s.reviewer.ListByStatus(ctx, status)
}

func (s *Service) Approve(ctx context.Context, actor Admin, breederID string) (breeders.Breeder, error) {
	return s.reviewer.Approve(ctx, breederID, actor.ID)
}

func (s *Service) Reject(ctx context.Context, actor Admin, breederID, reason string) (breeders.Breeder, error) {
	return s.reviewer.Reject(ctx, breederID, actor.ID, reason)
}

// DeleteBreeder rechaza con breeders.ErrHasAnimals si el breeder todavía
// tiene animales; el FK del repositorio cubre la carrera.
func (s *Service) DeleteBreeder(ctx context.Context, breederID string) error {
	n, err := s.animals.CountByBreeder(ctx, breederID)
	if err != nil {
		return err
	}
	if n > 0 {
		return breeders.ErrHasAnimals
	}
	return s.reviewer.Delete(ctx, breederID)
}

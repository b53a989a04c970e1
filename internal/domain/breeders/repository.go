package breeders

import "context"

// Repository. Create debe fallar con ErrEmailTaken / ErrNationalIDTaken /
// ErrFarmPrefixTaken cuando se viola una restricción de unicidad.
type Repository interface {
	Create(ctx context.Context, b Breeder) error
	Update(ctx context.Context, b Breeder) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Breeder, error)

	// GetByLogin busca por email o national_id.
	GetByLogin(ctx context.Context, identifier string) (Breeder, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	NationalIDExists(ctx context.Context, nationalID string) (bool, error)
	FarmPrefixExists(ctx context.Context, prefix string) (bool, error)

	ListByStatus(ctx context.Context, status Status) ([]Breeder, error)
}

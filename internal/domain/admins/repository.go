package admins

import "context"

type Repository interface {
	// Create falla con ErrEmailTaken si el email ya existe.
	Create(ctx context.Context, a Admin) error
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)
	Count(ctx context.Context) (int, error)
}

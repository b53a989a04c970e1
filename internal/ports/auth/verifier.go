package auth

import (
	"context"
	"errors"
)

var ErrInvalidCredential = errors.New("invalid credential")

// AuthVerifier recibe el valor crudo del header Authorization (ej: "Basic ...")
// y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, credential string) (Claims, error)
}

package basic

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"breed-registry/internal/domain/admins"
	"breed-registry/internal/ports/auth"
)

var (
	ErrCredentialEmpty = errors.New("credential is empty")
	ErrNotBasic        = errors.New("authorization scheme is not basic")
)

// Authenticator valida email + password contra los admins guardados.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (admins.Admin, error)
}

// Verifier implementa auth.AuthVerifier con HTTP Basic (email:password).
type Verifier struct {
	admins Authenticator
}

func NewVerifier(a Authenticator) *Verifier {
	return &Verifier{admins: a}
}

func (v *Verifier) Verify(ctx context.Context, credential string) (auth.Claims, error) {
	email, password, err := parseBasic(credential)
	if err != nil {
		return auth.Claims{}, err
	}

	a, err := v.admins.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, admins.ErrInvalidCredentials) {
			return auth.Claims{}, auth.ErrInvalidCredential
		}
		return auth.Claims{}, fmt.Errorf("basic verify failed: %w", err)
	}

	return auth.Claims{UserID: a.ID, Email: a.Email, Role: a.Role}, nil
}

func parseBasic(credential string) (email, password string, err error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", "", ErrCredentialEmpty
	}
	scheme, payload, ok := strings.Cut(credential, " ")
	if !ok || !strings.EqualFold(scheme, "Basic") {
		return "", "", ErrNotBasic
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", "", auth.ErrInvalidCredential
	}
	email, password, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" {
		return "", "", auth.ErrInvalidCredential
	}
	return email, password, nil
}

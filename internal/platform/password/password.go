package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost de bcrypt. En tests se usa bcrypt.MinCost.
const DefaultCost = 12

var ErrMismatch = errors.New("password mismatch")

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify devuelve ErrMismatch si no coincide (o si el hash es inválido).
func (h *Hasher) Verify(hashed, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}

package memory

import (
	"context"
	"errors"
	"strings"

	"breed-registry/internal/domain/admins"
)

type adminRepo struct {
	st *Store
}

func NewAdminRepo(st *Store) admins.Repository {
	return &adminRepo{st: st}
}

func (r *adminRepo) Create(ctx context.Context, a admins.Admin) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("admin id required")
	}
	if _, exists := r.st.admins[a.ID]; exists {
		return errors.New("admin already exists")
	}
	for _, x := range r.st.admins {
		if x.Email == a.Email {
			return admins.ErrEmailTaken
		}
	}
	r.st.admins[a.ID] = a
	return nil
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (admins.Admin, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	a, ok := r.st.admins[id]
	if !ok {
		return admins.Admin{}, admins.ErrNotFound
	}
	return a, nil
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (admins.Admin, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, a := range r.st.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return admins.Admin{}, admins.ErrNotFound
}

func (r *adminRepo) Count(ctx context.Context) (int, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	return len(r.st.admins), nil
}

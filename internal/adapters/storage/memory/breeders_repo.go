package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"breed-registry/internal/domain/breeders"
)

type breederRepo struct {
	st *Store
}

func NewBreederRepo(st *Store) breeders.Repository {
	return &breederRepo{st: st}
}

func (r *breederRepo) Create(ctx context.Context, b breeders.Breeder) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("breeder id required")
	}
	if _, exists := r.st.breeders[b.ID]; exists {
		return errors.New("breeder already exists")
	}
	if err := r.unique(b); err != nil {
		return err
	}
	r.st.breeders[b.ID] = b
	return nil
}

func (r *breederRepo) Update(ctx context.Context, b breeders.Breeder) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.breeders[b.ID]; !exists {
		return breeders.ErrNotFound
	}
	if err := r.unique(b); err != nil {
		return err
	}
	r.st.breeders[b.ID] = b
	return nil
}

// unique: caller tiene el lock.
func (r *breederRepo) unique(b breeders.Breeder) error {
	for id, x := range r.st.breeders {
		if id == b.ID {
			continue
		}
		switch {
		case x.Email == b.Email:
			return breeders.ErrEmailTaken
		case x.NationalID == b.NationalID:
			return breeders.ErrNationalIDTaken
		case x.FarmPrefix == b.FarmPrefix:
			return breeders.ErrFarmPrefixTaken
		}
	}
	return nil
}

// Delete respeta el ON DELETE RESTRICT de animals y breeding_events.
func (r *breederRepo) Delete(ctx context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, exists := r.st.breeders[id]; !exists {
		return breeders.ErrNotFound
	}
	for _, a := range r.st.animals {
		if a.BreederID == id {
			return breeders.ErrHasAnimals
		}
	}
	for _, e := range r.st.events {
		if e.BreederID == id {
			return breeders.ErrHasAnimals
		}
	}
	delete(r.st.breeders, id)
	return nil
}

func (r *breederRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	b, ok := r.st.breeders[id]
	if !ok {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return b, nil
}

func (r *breederRepo) GetByLogin(ctx context.Context, identifier string) (breeders.Breeder, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, b := range r.st.breeders {
		if b.Email == identifier || b.NationalID == identifier {
			return b, nil
		}
	}
	return breeders.Breeder{}, breeders.ErrNotFound
}

func (r *breederRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(func(b breeders.Breeder) bool { return b.Email == email }), nil
}

func (r *breederRepo) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	return r.exists(func(b breeders.Breeder) bool { return b.NationalID == nationalID }), nil
}

func (r *breederRepo) FarmPrefixExists(ctx context.Context, prefix string) (bool, error) {
	return r.exists(func(b breeders.Breeder) bool { return b.FarmPrefix == prefix }), nil
}

func (r *breederRepo) exists(match func(breeders.Breeder) bool) bool {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, b := range r.st.breeders {
		if match(b) {
			return true
		}
	}
	return false
}

func (r *breederRepo) ListByStatus(ctx context.Context, status breeders.Status) ([]breeders.Breeder, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]breeders.Breeder, 0)
	for _, b := range r.st.breeders {
		if b.Status == status {
			out = append(out, b)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

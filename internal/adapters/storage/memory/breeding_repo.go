package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"breed-registry/internal/domain/breeding"
)

type breedingRepo struct {
	st *Store
}

func NewBreedingRepo(st *Store) breeding.Repository {
	return &breedingRepo{st: st}
}

func (r *breedingRepo) Create(ctx context.Context, e breeding.Event) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	if _, exists := r.st.events[e.ID]; exists {
		return errors.New("event already exists")
	}
	if _, ok := r.st.breeders[e.BreederID]; !ok {
		return breeding.ErrBreederNotFound
	}
	if _, ok := r.st.animals[e.DamID]; !ok {
		return breeding.ErrInvalidDam
	}
	if e.SireID != nil {
		if _, ok := r.st.animals[*e.SireID]; !ok {
			return breeding.ErrInvalidSire
		}
	}
	if e.OffspringID != nil {
		if _, ok := r.st.animals[*e.OffspringID]; !ok {
			return breeding.ErrInvalidOffspring
		}
	}

	r.st.events[e.ID] = e
	return nil
}

func (r *breedingRepo) GetByID(ctx context.Context, id string) (breeding.Event, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	e, ok := r.st.events[id]
	if !ok {
		return breeding.Event{}, breeding.ErrNotFound
	}
	return e, nil
}

// ListByBreeder ordena por breeding_date desc, created_at desc.
func (r *breedingRepo) ListByBreeder(ctx context.Context, breederID string, f breeding.ListFilter) ([]breeding.Event, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]breeding.Event, 0)
	for _, e := range r.st.events {
		if e.BreederID == breederID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].BreedingDate.Equal(out[j].BreedingDate) {
			return out[i].BreedingDate.After(out[j].BreedingDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return page(out, f.Skip, f.Limit), nil
}

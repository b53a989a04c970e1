package memory

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"breed-registry/internal/domain/animals"
)

type animalRepo struct {
	st *Store
}

func NewAnimalRepo(st *Store) animals.Repository {
	return &animalRepo{st: st}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.st.animals[a.ID]; exists {
		return errors.New("animal already exists")
	}
	if _, ok := r.st.breeders[a.BreederID]; !ok {
		return animals.ErrBreederNotFound
	}
	for _, x := range r.st.animals {
		if x.AnimalID == a.AnimalID {
			return animals.ErrAnimalIDTaken
		}
	}
	for _, parent := range []*string{a.SireID, a.DamID} {
		if parent == nil {
			continue
		}
		if _, ok := r.st.animals[*parent]; !ok {
			return animals.ErrInvalidInput
		}
	}

	r.st.seq++
	r.st.animals[a.ID] = a
	r.st.animalSeq[a.ID] = r.st.seq
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	a, ok := r.st.animals[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) GetByAnimalID(ctx context.Context, animalID string) (animals.Animal, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	a, ok := r.byAnimalID(animalID)
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) byAnimalID(animalID string) (animals.Animal, bool) {
	for _, a := range r.st.animals {
		if a.AnimalID == animalID {
			return a, true
		}
	}
	return animals.Animal{}, false
}

func (r *animalRepo) ListByBreeder(ctx context.Context, breederID string, f animals.ListFilter) ([]animals.Animal, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.st.animals {
		if a.BreederID == breederID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.st.animalSeq[out[i].ID] < r.st.animalSeq[out[j].ID]
	})
	return page(out, f.Skip, f.Limit), nil
}

func (r *animalRepo) CountByBreeder(ctx context.Context, breederID string) (int, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	n := 0
	for _, a := range r.st.animals {
		if a.BreederID == breederID {
			n++
		}
	}
	return n, nil
}

// LatestAnimalID: mayor created_at; empate => último insertado.
func (r *animalRepo) LatestAnimalID(ctx context.Context, prefix string) (string, bool, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	var (
		latest animals.Animal
		found  bool
	)
	for _, a := range r.st.animals {
		if !strings.HasPrefix(a.AnimalID, prefix+"-") {
			continue
		}
		if !found ||
			a.CreatedAt.After(latest.CreatedAt) ||
			(a.CreatedAt.Equal(latest.CreatedAt) && r.st.animalSeq[a.ID] > r.st.animalSeq[latest.ID]) {
			latest, found = a, true
		}
	}
	return latest.AnimalID, found, nil
}

func (r *animalRepo) HighestAnimalID(ctx context.Context, prefix string) (string, bool, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	best, top := "", -1
	for _, a := range r.st.animals {
		if !strings.HasPrefix(a.AnimalID, prefix+"-") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(a.AnimalID, prefix+"-"))
		if err != nil || n < 0 {
			continue
		}
		if n > top {
			best, top = a.AnimalID, n
		}
	}
	return best, top >= 0, nil
}

// Lineage recorre sire/dam en anchura. Cada ancestro aparece una sola vez,
// en la generación más cercana.
func (r *animalRepo) Lineage(ctx context.Context, animalID string, generations int) ([]animals.LineageEntry, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	root, ok := r.byAnimalID(animalID)
	if !ok {
		return nil, nil
	}

	out := []animals.LineageEntry{r.entry(root, 0)}
	visited := map[string]bool{root.ID: true}
	level := []animals.Animal{root}

	for g := 1; g <= generations && len(level) > 0; g++ {
		var next []animals.Animal
		for _, a := range level {
			for _, pid := range []*string{a.SireID, a.DamID} {
				if pid == nil || visited[*pid] {
					continue
				}
				p, ok := r.st.animals[*pid]
				if !ok {
					continue
				}
				visited[p.ID] = true
				out = append(out, r.entry(p, g))
				next = append(next, p)
			}
		}
		level = next
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Generation != out[j].Generation {
			return out[i].Generation < out[j].Generation
		}
		return out[i].AnimalID < out[j].AnimalID
	})
	return out, nil
}

func (r *animalRepo) entry(a animals.Animal, generation int) animals.LineageEntry {
	e := animals.LineageEntry{
		AnimalID:    a.AnimalID,
		Breed:       a.Breed,
		Gender:      a.Gender,
		DateOfBirth: a.DateOfBirth,
		Generation:  generation,
	}
	if a.SireID != nil {
		if p, ok := r.st.animals[*a.SireID]; ok {
			e.SireAnimalID = &p.AnimalID
		}
	}
	if a.DamID != nil {
		if p, ok := r.st.animals[*a.DamID]; ok {
			e.DamAnimalID = &p.AnimalID
		}
	}
	return e
}

// BreedSummary agrupa por especie los animales de una raza (case-insensitive).
func (r *animalRepo) BreedSummary(ctx context.Context, breed string) ([]animals.BreedSummary, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	byType := map[animals.AnimalType]*animals.BreedSummary{}
	owners := map[animals.AnimalType]map[string]bool{}

	for _, a := range r.st.animals {
		if !strings.EqualFold(a.Breed, breed) {
			continue
		}
		s, ok := byType[a.AnimalType]
		if !ok {
			s = &animals.BreedSummary{Breed: a.Breed, AnimalType: a.AnimalType}
			byType[a.AnimalType] = s
			owners[a.AnimalType] = map[string]bool{}
		}
		s.Total++
		switch a.Gender {
		case animals.GenderMale:
			s.Males++
		case animals.GenderFemale:
			s.Females++
		}
		owners[a.AnimalType][a.BreederID] = true
	}

	out := make([]animals.BreedSummary, 0, len(byType))
	for t, s := range byType {
		s.Breeders = len(owners[t])
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AnimalType < out[j].AnimalType })
	return out, nil
}

package animals

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"breed-registry/internal/domain/breeders"
	"breed-registry/internal/domain/identifiers"

	"github.com/jonboulle/clockwork"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Animal

	// steal > 0: el próximo Create simula que otro proceso insertó el mismo
	// animal_id primero.
	steal int
	// alwaysTaken: Create siempre falla con ErrAnimalIDTaken.
	alwaysTaken bool
	creates     int
	// stale: LatestAnimalID devuelve siempre este id, como tras un reloj
	// que retrocedió.
	stale string

	lastGenerations int
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	r.creates++
	if r.alwaysTaken {
		return ErrAnimalIDTaken
	}
	if r.steal > 0 {
		r.steal--
		phantom := a
		phantom.ID = a.ID + "-other"
		r.items = append(r.items, phantom)
		return ErrAnimalIDTaken
	}
	for _, x := range r.items {
		if x.AnimalID == a.AnimalID {
			return ErrAnimalIDTaken
		}
	}
	r.items = append(r.items, a)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Animal{}, ErrNotFound
}

func (r *testRepo) GetByAnimalID(ctx context.Context, animalID string) (Animal, error) {
	for _, a := range r.items {
		if a.AnimalID == animalID {
			return a, nil
		}
	}
	return Animal{}, ErrNotFound
}

func (r *testRepo) ListByBreeder(ctx context.Context, breederID string, f ListFilter) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.items {
		if a.BreederID == breederID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) CountByBreeder(ctx context.Context, breederID string) (int, error) {
	n := 0
	for _, a := range r.items {
		if a.BreederID == breederID {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) LatestAnimalID(ctx context.Context, prefix string) (string, bool, error) {
	if r.stale != "" {
		return r.stale, true, nil
	}
	latest, found := "", false
	for _, a := range r.items {
		if strings.HasPrefix(a.AnimalID, prefix+"-") {
			latest, found = a.AnimalID, true
		}
	}
	return latest, found, nil
}

func (r *testRepo) HighestAnimalID(ctx context.Context, prefix string) (string, bool, error) {
	best, top := "", -1
	for _, a := range r.items {
		n, err := strconv.Atoi(strings.TrimPrefix(a.AnimalID, prefix+"-"))
		if !strings.HasPrefix(a.AnimalID, prefix+"-") || err != nil {
			continue
		}
		if n > top {
			best, top = a.AnimalID, n
		}
	}
	return best, top >= 0, nil
}

func (r *testRepo) Lineage(ctx context.Context, animalID string, generations int) ([]LineageEntry, error) {
	r.lastGenerations = generations
	a, err := r.GetByAnimalID(ctx, animalID)
	if err != nil {
		return nil, nil
	}
	return []LineageEntry{{AnimalID: a.AnimalID, Breed: a.Breed, Gender: a.Gender}}, nil
}

func (r *testRepo) BreedSummary(ctx context.Context, breed string) ([]BreedSummary, error) {
	return nil, nil
}

type testDirectory map[string]breeders.Breeder

func (d testDirectory) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	b, ok := d[id]
	if !ok {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return b, nil
}

type countingObserver struct{ retries int }

func (o *countingObserver) PrefixCollision(string) {}
func (o *countingObserver) AnimalIDRetry(string)   { o.retries++ }

func newTestService(repo *testRepo) (*Service, *countingObserver) {
	dir := testDirectory{
		"b1": {ID: "b1", FarmPrefix: "JSM"},
		"b2": {ID: "b2", FarmPrefix: "JSM1"},
	}
	obs := &countingObserver{}
	svc := NewService(repo, dir, identifiers.NewAllocator(clockwork.NewFakeClock(), obs))
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, obs
}

func cow(g Gender) CreateInput {
	return CreateInput{AnimalType: TypeCattle, Breed: "Friesian", Gender: g}
}

// -------------------------
// Tests
// -------------------------

func TestCreate_SequentialAnimalIDs(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	svc, _ := newTestService(repo)

	want := []string{"JSM-001", "JSM-002", "JSM-003"}
	for _, w := range want {
		a, err := svc.Create(ctx, "b1", cow(GenderFemale))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if a.AnimalID != w {
			t.Fatalf("expected %s, got %s", w, a.AnimalID)
		}
		if a.BreederID != "b1" || a.ID == "" {
			t.Fatalf("unexpected animal: %+v", a)
		}
	}

	// Otro prefix arranca su propia secuencia aunque comparta raíz.
	a, err := svc.Create(ctx, "b2", cow(GenderMale))
	if err != nil {
		t.Fatalf("Create b2: %v", err)
	}
	if a.AnimalID != "JSM1-001" {
		t.Fatalf("expected JSM1-001, got %s", a.AnimalID)
	}
}

func TestCreate_UnknownBreeder(t *testing.T) {
	svc, _ := newTestService(&testRepo{})

	_, err := svc.Create(context.Background(), "nope", cow(GenderMale))
	if !errors.Is(err, ErrBreederNotFound) {
		t.Fatalf("expected ErrBreederNotFound, got %v", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, _ := newTestService(&testRepo{})
	ctx := context.Background()

	in := cow(GenderMale)
	in.Breed = "  "
	if _, err := svc.Create(ctx, "b1", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank breed: expected ErrInvalidInput, got %v", err)
	}

	in = cow("unknown")
	if _, err := svc.Create(ctx, "b1", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad gender: expected ErrInvalidInput, got %v", err)
	}

	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	in = cow(GenderMale)
	in.DateOfBirth = &future
	if _, err := svc.Create(ctx, "b1", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("future dob: expected ErrInvalidInput, got %v", err)
	}
}

func TestCreate_ParentsMustBeOwnedAndMatchGender(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&testRepo{})

	bull, err := svc.Create(ctx, "b1", cow(GenderMale))
	if err != nil {
		t.Fatalf("Create bull: %v", err)
	}
	heifer, err := svc.Create(ctx, "b1", cow(GenderFemale))
	if err != nil {
		t.Fatalf("Create heifer: %v", err)
	}
	foreign, err := svc.Create(ctx, "b2", cow(GenderMale))
	if err != nil {
		t.Fatalf("Create foreign: %v", err)
	}

	calf := cow(GenderFemale)
	calf.SireID = bull.ID
	calf.DamID = heifer.ID
	got, err := svc.Create(ctx, "b1", calf)
	if err != nil {
		t.Fatalf("Create calf: %v", err)
	}
	if got.SireID == nil || *got.SireID != bull.ID || got.DamID == nil || *got.DamID != heifer.ID {
		t.Fatalf("parents not linked: %+v", got)
	}

	bad := cow(GenderFemale)
	bad.SireID = foreign.ID
	if _, err := svc.Create(ctx, "b1", bad); !errors.Is(err, ErrInvalidSire) {
		t.Fatalf("foreign sire: expected ErrInvalidSire, got %v", err)
	}

	bad = cow(GenderFemale)
	bad.SireID = heifer.ID
	if _, err := svc.Create(ctx, "b1", bad); !errors.Is(err, ErrInvalidSire) {
		t.Fatalf("female sire: expected ErrInvalidSire, got %v", err)
	}

	bad = cow(GenderFemale)
	bad.DamID = "00000000-0000-0000-0000-000000000000"
	if _, err := svc.Create(ctx, "b1", bad); !errors.Is(err, ErrInvalidDam) {
		t.Fatalf("missing dam: expected ErrInvalidDam, got %v", err)
	}
	if !errors.Is(ErrInvalidDam, ErrInvalidInput) {
		t.Fatalf("ErrInvalidDam must wrap ErrInvalidInput")
	}
}

func TestCreate_RetriesWhenAnimalIDTaken(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{steal: 2}
	svc, obs := newTestService(repo)

	a, err := svc.Create(ctx, "b1", cow(GenderMale))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.AnimalID != "JSM-003" {
		t.Fatalf("expected JSM-003 after two stolen ids, got %s", a.AnimalID)
	}
	if obs.retries != 2 {
		t.Fatalf("expected 2 retries observed, got %d", obs.retries)
	}
}

func TestCreate_RecoversFromStaleLatestID(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{
		items: []Animal{
			{ID: "x1", AnimalID: "JSM-001", BreederID: "b1"},
			{ID: "x2", AnimalID: "JSM-002", BreederID: "b1"},
			{ID: "x3", AnimalID: "JSM-003", BreederID: "b1"},
		},
		stale: "JSM-001",
	}
	svc, obs := newTestService(repo)

	a, err := svc.Create(ctx, "b1", cow(GenderMale))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.AnimalID != "JSM-004" {
		t.Fatalf("expected JSM-004 from the highest suffix, got %s", a.AnimalID)
	}
	if repo.creates != 2 || obs.retries != 1 {
		t.Fatalf("expected 2 inserts and 1 retry, got %d and %d", repo.creates, obs.retries)
	}
}

func TestCreate_GivesUpAfterMaxAttempts(t *testing.T) {
	repo := &testRepo{alwaysTaken: true}
	svc, _ := newTestService(repo)

	_, err := svc.Create(context.Background(), "b1", cow(GenderMale))
	if !errors.Is(err, ErrAnimalIDTaken) || !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrAnimalIDTaken, got %v", err)
	}
	if repo.creates != maxInsertAttempts {
		t.Fatalf("expected %d attempts, got %d", maxInsertAttempts, repo.creates)
	}
}

func TestOwnedBy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&testRepo{})

	a, err := svc.Create(ctx, "b1", cow(GenderMale))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.OwnedBy(ctx, "b1", a.ID); err != nil {
		t.Fatalf("OwnedBy owner: %v", err)
	}
	if _, err := svc.OwnedBy(ctx, "b2", a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("OwnedBy other: expected ErrNotFound, got %v", err)
	}
}

func TestLineage_ClampsGenerations(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	svc, _ := newTestService(repo)

	if _, err := svc.Create(ctx, "b1", cow(GenderMale)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cases := []struct {
		in, want int
	}{
		{0, DefaultGenerations},
		{-4, DefaultGenerations},
		{5, 5},
		{99, MaxGenerations},
	}
	for _, c := range cases {
		if _, err := svc.Lineage(ctx, "JSM-001", c.in); err != nil {
			t.Fatalf("Lineage(%d): %v", c.in, err)
		}
		if repo.lastGenerations != c.want {
			t.Fatalf("Lineage(%d): expected %d generations, got %d", c.in, c.want, repo.lastGenerations)
		}
	}

	if _, err := svc.Lineage(ctx, "XXX-001", 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown animal: expected ErrNotFound, got %v", err)
	}
}

func TestBreedSummary_EmptyIsNotFound(t *testing.T) {
	svc, _ := newTestService(&testRepo{})

	if _, err := svc.BreedSummary(context.Background(), "Boran"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.BreedSummary(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

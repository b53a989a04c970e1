package identifiers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Fakes
// -------------------------

type takenSet map[string]bool

func (s takenSet) FarmPrefixExists(_ context.Context, prefix string) (bool, error) {
	return s[prefix], nil
}

type failingChecker struct{}

func (failingChecker) FarmPrefixExists(context.Context, string) (bool, error) {
	return false, errors.New("db down")
}

// animalStore simula la tabla animals: ids en orden de creación.
type animalStore struct {
	mu  sync.Mutex
	ids []string
}

func (s *animalStore) LatestAnimalID(_ context.Context, prefix string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.ids) - 1; i >= 0; i-- {
		if strings.HasPrefix(s.ids[i], prefix+"-") {
			return s.ids[i], true, nil
		}
	}
	return "", false, nil
}

func (s *animalStore) HighestAnimalID(_ context.Context, prefix string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	best, top := "", -1
	for _, id := range s.ids {
		if !strings.HasPrefix(id, prefix+"-") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix+"-"))
		if err != nil {
			continue
		}
		if n > top {
			best, top = id, n
		}
	}
	return best, top >= 0, nil
}

func (s *animalStore) insert(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, id)
}

type countingObserver struct {
	mu         sync.Mutex
	collisions []string
	retries    int
}

func (o *countingObserver) PrefixCollision(c string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.collisions = append(o.collisions, c)
}

func (o *countingObserver) AnimalIDRetry(string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.retries++
}

// -------------------------
// BasePrefix
// -------------------------

func TestBasePrefix(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "John Smith", "JSM"},
		{"three words uses last", "Mary Ann Kimani", "MKI"},
		{"lowercase", "jane smyth", "JSM"},
		{"extra whitespace", "  John \t  Smith  ", "JSM"},
		{"non alpha stripped", "J0hn Sm1th", "JSM"},
		{"hyphen joins word", "Mary-Jane Otieno", "MOT"},
		{"short last word padded", "John O", "JOX"},
		{"single word", "Madonna", "MAD"},
		{"single short word", "Al", "ALX"},
		{"single letter", "Q", "QXX"},
		{"empty", "", FallbackPrefix},
		{"only digits", "12345", FallbackPrefix},
		{"only symbols", "!!! ???", FallbackPrefix},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BasePrefix(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, PrefixLength)
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	p, err := NormalizePrefix(" kfa1 ")
	require.NoError(t, err)
	assert.Equal(t, "KFA1", p)

	_, err = NormalizePrefix("   ")
	assert.ErrorIs(t, err, ErrEmptyPrefix)

	_, err = NormalizePrefix("K-1")
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = NormalizePrefix("ABCDEFGHIJK")
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

// -------------------------
// FarmPrefix
// -------------------------

func TestAllocator_FarmPrefix_BaseWhenFree(t *testing.T) {
	a := NewAllocator(clockwork.NewFakeClock(), nil)

	p, err := a.FarmPrefix(context.Background(), "John Smith", takenSet{})
	require.NoError(t, err)
	assert.Equal(t, "JSM", p)
}

func TestAllocator_FarmPrefix_FirstFreeSuffix(t *testing.T) {
	obs := &countingObserver{}
	a := NewAllocator(clockwork.NewFakeClock(), obs)

	p, err := a.FarmPrefix(context.Background(), "Jane Smyth", takenSet{"JSM": true})
	require.NoError(t, err)
	assert.Equal(t, "JSM1", p)

	p, err = a.FarmPrefix(context.Background(), "Jane Smyth", takenSet{"JSM": true, "JSM1": true, "JSM2": true, "JSM4": true})
	require.NoError(t, err)
	assert.Equal(t, "JSM3", p)

	assert.Equal(t, []string{"JSM", "JSM", "JSM1", "JSM2"}, obs.collisions)
}

func TestAllocator_FarmPrefix_TimeDigitFallback(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_007, 0))
	a := NewAllocator(clock, nil)

	taken := takenSet{}
	for _, c := range Candidates("JSM") {
		taken[c] = true
	}

	p, err := a.FarmPrefix(context.Background(), "John Smith", taken)
	require.NoError(t, err)
	assert.Equal(t, "JS7", p)
}

func TestAllocator_FarmPrefix_FallbackCollision_Exhausted(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_003, 0))
	a := NewAllocator(clock, nil)

	taken := takenSet{"JS3": true}
	for _, c := range Candidates("JSM") {
		taken[c] = true
	}

	_, err := a.FarmPrefix(context.Background(), "John Smith", taken)
	assert.ErrorIs(t, err, ErrPrefixExhausted)
}

func TestAllocator_FarmPrefix_CheckerErrorPropagates(t *testing.T) {
	a := NewAllocator(clockwork.NewFakeClock(), nil)

	_, err := a.FarmPrefix(context.Background(), "John Smith", failingChecker{})
	assert.EqualError(t, err, "db down")
}

// -------------------------
// Animal ids
// -------------------------

func TestNextAnimalID(t *testing.T) {
	assert.Equal(t, "JSM-008", NextAnimalID("JSM", "JSM-007"))
	assert.Equal(t, "JSM-1000", NextAnimalID("JSM", "JSM-999"))
	assert.Equal(t, "JSM-1001", NextAnimalID("JSM", "JSM-1000"))
	assert.Equal(t, "JSM-001", NextAnimalID("JSM", "JSM-abc"))
	assert.Equal(t, "JSM-001", NextAnimalID("JSM", "JSM-"))
	assert.Equal(t, "JSM-001", NextAnimalID("JSM", "garbage"))
}

func TestAllocator_AllocateAnimalID(t *testing.T) {
	a := NewAllocator(clockwork.NewFakeClock(), nil)
	ctx := context.Background()

	store := &animalStore{}
	id, err := a.AllocateAnimalID(ctx, "JSM", store)
	require.NoError(t, err)
	assert.Equal(t, "JSM-001", id)

	// otro prefix que empieza igual no cuenta
	store.insert("JSM1-004")
	id, err = a.AllocateAnimalID(ctx, "JSM", store)
	require.NoError(t, err)
	assert.Equal(t, "JSM-001", id)

	store.insert("JSM-007")
	id, err = a.AllocateAnimalID(ctx, "JSM", store)
	require.NoError(t, err)
	assert.Equal(t, "JSM-008", id)

	store.insert("JSM-x1")
	id, err = a.AllocateAnimalID(ctx, "JSM", store)
	require.NoError(t, err)
	assert.Equal(t, "JSM-001", id)

	_, err = a.AllocateAnimalID(ctx, "  ", store)
	assert.ErrorIs(t, err, ErrEmptyPrefix)
}

func TestAllocator_AllocateAfterConflict_UsesHighestSuffix(t *testing.T) {
	a := NewAllocator(clockwork.NewFakeClock(), nil)
	ctx := context.Background()

	store := &animalStore{}
	id, err := a.AllocateAfterConflict(ctx, "JSM", store)
	require.NoError(t, err)
	assert.Equal(t, "JSM-001", id)

	// El último insertado no es el mayor: latest repetiría un id existente.
	store.insert("JSM-001")
	store.insert("JSM-003")
	store.insert("JSM-002")
	store.insert("JSM-x9")

	id, err = a.AllocateAnimalID(ctx, "JSM", store)
	require.NoError(t, err)
	assert.Equal(t, "JSM-001", id)

	id, err = a.AllocateAfterConflict(ctx, "JSM", store)
	require.NoError(t, err)
	assert.Equal(t, "JSM-004", id)

	_, err = a.AllocateAfterConflict(ctx, "", store)
	assert.ErrorIs(t, err, ErrEmptyPrefix)
}

func TestAllocator_ConcurrentAllocation_NoDuplicates(t *testing.T) {
	a := NewAllocator(clockwork.NewRealClock(), nil)
	store := &animalStore{}

	const n = 64
	var wg sync.WaitGroup
	ids := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := a.LockPrefix("JSM")
			defer unlock()

			id, err := a.AllocateAnimalID(context.Background(), "JSM", store)
			if err != nil {
				t.Errorf("allocate: %v", err)
				return
			}
			store.insert(id)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.True(t, seen["JSM-001"])
	assert.True(t, seen["JSM-064"])

	// la tabla de locks se limpia al soltar
	a.mu.Lock()
	defer a.mu.Unlock()
	assert.Empty(t, a.locks)
}

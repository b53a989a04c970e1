package public

import (
	"context"
	"errors"
	"testing"
	"time"

	"breed-registry/internal/domain/animals"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	lineageCalls int
	summaryCalls int
}

func (s *stubSource) Lineage(ctx context.Context, animalID string, generations int) ([]animals.LineageEntry, error) {
	s.lineageCalls++
	if animalID != "JSM-003" {
		return nil, animals.ErrNotFound
	}
	sire, dam := "JSM-001", "JSM-002"
	dob := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []animals.LineageEntry{
		{AnimalID: "JSM-003", Breed: "Boran", Gender: animals.GenderFemale, DateOfBirth: &dob, SireAnimalID: &sire, DamAnimalID: &dam},
		{AnimalID: "JSM-001", Breed: "Boran", Gender: animals.GenderMale, Generation: 1},
		{AnimalID: "JSM-002", Breed: "Boran", Gender: animals.GenderFemale, Generation: 1},
	}, nil
}

func (s *stubSource) BreedSummary(ctx context.Context, breed string) ([]animals.BreedSummary, error) {
	s.summaryCalls++
	return []animals.BreedSummary{{Breed: "Boran", AnimalType: animals.TypeCattle, Total: 3, Males: 1, Females: 2, Breeders: 1}}, nil
}

type mapCache struct {
	data map[string][]byte
	ttl  time.Duration
	fail bool
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.fail {
		return nil, false, errors.New("cache down")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.fail {
		return errors.New("cache down")
	}
	m.data[key] = value
	m.ttl = ttl
	return nil
}

func TestLineage_CachesRows(t *testing.T) {
	ctx := context.Background()
	src := &stubSource{}
	cache := &mapCache{data: map[string][]byte{}}
	svc := NewService(src, cache, time.Minute, nil)

	first, err := svc.Lineage(ctx, " jsm-003 ", 2)
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.Equal(t, "2024-01-15", *first[0].DateOfBirth)
	require.Equal(t, "JSM-001", *first[0].SireAnimalID)

	second, err := svc.Lineage(ctx, "JSM-003", 2)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, src.lineageCalls)
	require.Equal(t, time.Minute, cache.ttl)
	require.Contains(t, cache.data, "lineage:JSM-003:2")
}

func TestLineage_NotFoundIsNotCached(t *testing.T) {
	src := &stubSource{}
	cache := &mapCache{data: map[string][]byte{}}
	svc := NewService(src, cache, 0, nil)

	_, err := svc.Lineage(context.Background(), "XXX-001", 3)
	require.ErrorIs(t, err, animals.ErrNotFound)
	require.Empty(t, cache.data)
}

func TestBreedSummary_CacheFailureFallsThrough(t *testing.T) {
	src := &stubSource{}
	svc := NewService(src, &mapCache{fail: true}, 0, nil)

	for i := 0; i < 2; i++ {
		rows, err := svc.BreedSummary(context.Background(), "boran")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, 2, rows[0].Females)
	}
	require.Equal(t, 2, src.summaryCalls)
}

func TestNoCacheWhenNil(t *testing.T) {
	src := &stubSource{}
	svc := NewService(src, nil, 0, nil)

	_, err := svc.BreedSummary(context.Background(), "Boran")
	require.NoError(t, err)
	_, err = svc.BreedSummary(context.Background(), "Boran")
	require.NoError(t, err)
	require.Equal(t, 2, src.summaryCalls)
}

package public

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"breed-registry/internal/domain/animals"
	"breed-registry/internal/platform/logger"
)

const DefaultTTL = 5 * time.Minute

// Source es la parte de animals.Service que expone el registro público.
type Source interface {
	Lineage(ctx context.Context, animalID string, generations int) ([]animals.LineageEntry, error)
	BreedSummary(ctx context.Context, breed string) ([]animals.BreedSummary, error)
}

type Service struct {
	src   Source
	cache Cache
	ttl   time.Duration
	log   logger.Logger
}

func NewService(src Source, cache Cache, ttl time.Duration, log logger.Logger) *Service {
	if cache == nil {
		cache = noCache{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{src: src, cache: cache, ttl: ttl, log: log}
}

func (s *Service) Lineage(ctx context.Context, animalID string, generations int) ([]LineageRow, error) {
	animalID = strings.ToUpper(strings.TrimSpace(animalID))
	key := fmt.Sprintf("lineage:%s:%d", animalID, generations)

	var out []LineageRow
	if s.lookup(ctx, key, &out) {
		return out, nil
	}

	entries, err := s.src.Lineage(ctx, animalID, generations)
	if err != nil {
		return nil, err
	}
	out = make([]LineageRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLineageRow(e))
	}
	s.store(ctx, key, out)
	return out, nil
}

func (s *Service) BreedSummary(ctx context.Context, breed string) ([]BreedSummaryRow, error) {
	breed = strings.TrimSpace(breed)
	key := "breed:" + strings.ToLower(breed)

	var out []BreedSummaryRow
	if s.lookup(ctx, key, &out) {
		return out, nil
	}

	rows, err := s.src.BreedSummary(ctx, breed)
	if err != nil {
		return nil, err
	}
	out = make([]BreedSummaryRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, BreedSummaryRow{
			Breed:      r.Breed,
			AnimalType: r.AnimalType,
			Total:      r.Total,
			Males:      r.Males,
			Females:    r.Females,
			Breeders:   r.Breeders,
		})
	}
	s.store(ctx, key, out)
	return out, nil
}

func (s *Service) lookup(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("public: cache get failed", map[string]any{"key": key, "error": err})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn("public: cache entry corrupt", map[string]any{"key": key, "error": err})
		return false
	}
	return true
}

func (s *Service) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.log.Warn("public: cache set failed", map[string]any{"key": key, "error": err})
	}
}

func toLineageRow(e animals.LineageEntry) LineageRow {
	var dob *string
	if e.DateOfBirth != nil {
		s := e.DateOfBirth.Format("2006-01-02")
		dob = &s
	}
	return LineageRow{
		AnimalID:     e.AnimalID,
		Breed:        e.Breed,
		Gender:       e.Gender,
		DateOfBirth:  dob,
		SireAnimalID: e.SireAnimalID,
		DamAnimalID:  e.DamAnimalID,
		Generation:   e.Generation,
	}
}

package memory

import (
	"sync"

	"breed-registry/internal/domain/admins"
	"breed-registry/internal/domain/animals"
	"breed-registry/internal/domain/breeders"
	"breed-registry/internal/domain/breeding"
)

// Store guarda todas las tablas bajo un único lock para poder chequear
// unicidad y FKs entre entidades igual que en postgres.
// Los repos (NewBreederRepo, NewAnimalRepo, ...) son vistas sobre el mismo Store.
type Store struct {
	mu sync.RWMutex

	breeders map[string]breeders.Breeder
	animals  map[string]animals.Animal
	events   map[string]breeding.Event
	admins   map[string]admins.Admin

	// orden de inserción, para desempatar created_at iguales
	seq       int64
	animalSeq map[string]int64
}

func NewStore() *Store {
	return &Store{
		breeders:  make(map[string]breeders.Breeder),
		animals:   make(map[string]animals.Animal),
		events:    make(map[string]breeding.Event),
		admins:    make(map[string]admins.Admin),
		animalSeq: make(map[string]int64),
	}
}

func page[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

package animals

import "context"

type Repository interface {
	// Create falla con ErrAnimalIDTaken si AnimalID ya existe.
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	GetByAnimalID(ctx context.Context, animalID string) (Animal, error)
	ListByBreeder(ctx context.Context, breederID string, filter ListFilter) ([]Animal, error)
	CountByBreeder(ctx context.Context, breederID string) (int, error)

	// LatestAnimalID: el animal_id creado más recientemente con "<prefix>-".
	LatestAnimalID(ctx context.Context, prefix string) (string, bool, error)
	// HighestAnimalID: el animal_id con mayor sufijo numérico con "<prefix>-".
	HighestAnimalID(ctx context.Context, prefix string) (string, bool, error)

	Lineage(ctx context.Context, animalID string, generations int) ([]LineageEntry, error)
	BreedSummary(ctx context.Context, breed string) ([]BreedSummary, error)
}

type ListFilter struct {
	Skip  int
	Limit int
}

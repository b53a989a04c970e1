package public

import "breed-registry/internal/domain/animals"

// LineageRow es una fila del árbol genealógico público.
type LineageRow struct {
	AnimalID     string         `json:"animal_id"`
	Breed        string         `json:"breed"`
	Gender       animals.Gender `json:"gender"`
	DateOfBirth  *string        `json:"date_of_birth,omitempty"`
	SireAnimalID *string        `json:"sire_animal_id,omitempty"`
	DamAnimalID  *string        `json:"dam_animal_id,omitempty"`
	Generation   int            `json:"generation"`
}

// BreedSummaryRow agrega el inventario de una raza por especie.
type BreedSummaryRow struct {
	Breed      string             `json:"breed"`
	AnimalType animals.AnimalType `json:"animal_type"`
	Total      int                `json:"total"`
	Males      int                `json:"males"`
	Females    int                `json:"females"`
	Breeders   int                `json:"breeders"`
}

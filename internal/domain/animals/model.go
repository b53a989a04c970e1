package animals

import "time"

// AnimalType define las especies soportadas por el registro.
// @Enum cattle, sheep, goat, pig, horse, other
type AnimalType string

const (
	TypeCattle AnimalType = "cattle"
	TypeSheep  AnimalType = "sheep"
	TypeGoat   AnimalType = "goat"
	TypePig    AnimalType = "pig"
	TypeHorse  AnimalType = "horse"
	TypeOther  AnimalType = "other"
)

// Gender define el sexo del animal.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Animal es un registro individual. AnimalID ("JSM-001") es el identificador
// visible y único en todo el sistema; ID es la clave interna.
type Animal struct {
	ID        string
	AnimalID  string
	BreederID string

	AnimalType  AnimalType
	Breed       string
	Gender      Gender
	DateOfBirth *time.Time

	// Referencias a Animal.ID del mismo breeder.
	SireID *string
	DamID  *string

	CreatedAt time.Time
}

// LineageEntry es una fila del árbol genealógico. Generation 0 es el animal
// consultado, 1 sus padres, 2 sus abuelos, etc.
type LineageEntry struct {
	AnimalID     string
	Breed        string
	Gender       Gender
	DateOfBirth  *time.Time
	SireAnimalID *string
	DamAnimalID  *string
	Generation   int
}

// BreedSummary agrega el inventario público de una raza por especie.
type BreedSummary struct {
	Breed      string
	AnimalType AnimalType
	Total      int
	Males      int
	Females    int
	Breeders   int
}

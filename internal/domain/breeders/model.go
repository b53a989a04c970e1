package breeders

import "time"

// Status del proceso de aprobación.
// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// BreederType distingue personas de empresas.
type BreederType string

const (
	TypeIndividual BreederType = "individual"
	TypeCompany    BreederType = "company"
)

// Breeder representa un criador registrado. Es dueño de animales y eventos de cría.
type Breeder struct {
	ID string

	FullName    string
	NationalID  string
	BreederType BreederType

	FarmName     string
	FarmPrefix   string // único; namespace de los animal_id
	FarmLocation string
	County       string

	Phone        string
	Email        string
	PasswordHash string

	Status          Status
	ReviewedBy      *string // admin que aprobó/rechazó
	ReviewedAt      *time.Time
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

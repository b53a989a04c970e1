package breeding

import "time"

// Method indica cómo se realizó la cría.
// @Enum natural, artificial_insemination, embryo_transfer, ivf
type Method string

const (
	MethodNatural                Method = "natural"
	MethodArtificialInsemination Method = "artificial_insemination"
	MethodEmbryoTransfer         Method = "embryo_transfer"
	MethodIVF                    Method = "ivf"
)

func (m Method) Valid() bool {
	switch m {
	case MethodNatural, MethodArtificialInsemination, MethodEmbryoTransfer, MethodIVF:
		return true
	}
	return false
}

// Event registra un intento de cría de un breeder.
// DamID, SireID y OffspringID son Animal.ID del mismo breeder.
type Event struct {
	ID        string
	BreederID string
	Method    Method

	DamID       string
	SireID      *string
	OffspringID *string

	BreedingDate    time.Time
	ExpectedDueDate *time.Time

	// Metadatos según el método (IA, transferencia, etc.).
	SemenSource  string
	AITechnician string
	BatchNumber  string
	DonorDam     string
	EmbryoID     string

	Notes     string
	CreatedAt time.Time
}

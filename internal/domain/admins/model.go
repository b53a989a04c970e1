package admins

import "time"

const RoleAdmin = "admin"

// Admin puede aprobar, rechazar y eliminar breeders.
type Admin struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

package auth

// Claims identifica al actor autenticado de un request.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleWorker  = "Worker"
)

// ValidRole indica si el rol pertenece al conjunto permitido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleWorker
}

// User representa un usuario del sistema (pertenece a una Company).
// UserID es el identificador de login, único dentro de la empresa.
type User struct {
	ID           string
	CompanyID    string
	Name         string
	UserID       string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, Manager, Worker
	CreatedAt    time.Time
}

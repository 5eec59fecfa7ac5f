package dto

import "time"

// RegisterRequest entrada para registro (auth): password en texto, se hashea en el use case.
type RegisterRequest struct {
	CompanyID string `json:"companyId" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	UserID    string `json:"userId" validate:"required,min=1,max=100"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=Admin Manager Worker"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest entrada para login. CompanyID es opcional: si viene, la búsqueda
// se limita a esa empresa; si no, se busca el userId globalmente (comportamiento
// del cliente original).
type LoginRequest struct {
	CompanyID string `json:"companyId"`
	UserID    string `json:"userId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y datos básicos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

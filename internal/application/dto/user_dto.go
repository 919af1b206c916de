package dto

import "time"

// RegisterRequest alta de un usuario en la empresa del token.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"nombre" validate:"omitempty,max=200"`
	ProfileID string `json:"perfil_id" validate:"required,uuid"`
}

// UpdateUserRequest cambios sobre un usuario existente.
type UpdateUserRequest struct {
	Name      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	ProfileID *string `json:"perfil_id" validate:"omitempty,uuid"`
	Status    *string `json:"estado" validate:"omitempty,oneof=active inactive"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"empresa_id"`
	ProfileID string    `json:"perfil_id"`
	Email     string    `json:"email"`
	Name      string    `json:"nombre"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"usuario"`
	Profile string       `json:"perfil"`
	Modules []string     `json:"modulos"`
}

// MeResponse usuario autenticado con su perfil y módulos habilitados.
type MeResponse struct {
	User     UserResponse `json:"usuario"`
	Profile  string       `json:"perfil"`
	Modules  []string     `json:"modulos"`
	Branches []string     `json:"sucursales"`
}

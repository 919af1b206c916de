package dto

import "time"

// ProfileRequest alta/edición de un perfil con sus módulos y sucursales.
type ProfileRequest struct {
	Name        string   `json:"nombre" validate:"required,min=1,max=100"`
	Description string   `json:"descripcion" validate:"max=300"`
	Active      *bool    `json:"activo"`
	Modules     []string `json:"modulos" validate:"omitempty,dive,min=1,max=50"`
	BranchIDs   []string `json:"sucursales" validate:"omitempty,dive,uuid"`
}

// ProfileResponse salida de un perfil.
type ProfileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Active      bool      `json:"activo"`
	Modules     []string  `json:"modulos"`
	BranchIDs   []string  `json:"sucursales"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ModuleResponse módulo del catálogo.
type ModuleResponse struct {
	Code        string `json:"codigo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

package dto

import "time"

// CostCenterRequest alta/edición de un centro de costo.
type CostCenterRequest struct {
	Code        string `json:"codigo" validate:"required,min=1,max=30"`
	Name        string `json:"nombre" validate:"required,min=1,max=150"`
	Description string `json:"descripcion" validate:"max=300"`
	Active      *bool  `json:"activo"`
}

// CostCenterResponse salida de un centro de costo.
type CostCenterResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"codigo"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Active      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

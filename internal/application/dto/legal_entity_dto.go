package dto

import "time"

// LegalEntityRequest alta/edición de una razón social.
type LegalEntityRequest struct {
	RUT            string `json:"rut" validate:"required,max=20"`
	BusinessName   string `json:"razon_social" validate:"required,min=1,max=200"`
	LineOfBusiness string `json:"giro" validate:"max=200"`
	Address        string `json:"direccion" validate:"max=300"`
	Commune        string `json:"comuna" validate:"max=100"`
	Phone          string `json:"telefono" validate:"max=30"`
	Email          string `json:"email" validate:"omitempty,email,max=200"`
	Active         *bool  `json:"activo"`
}

// LegalEntityResponse salida de una razón social.
type LegalEntityResponse struct {
	ID             string    `json:"id"`
	RUT            string    `json:"rut"`
	BusinessName   string    `json:"razon_social"`
	LineOfBusiness string    `json:"giro"`
	Address        string    `json:"direccion"`
	Commune        string    `json:"comuna"`
	Phone          string    `json:"telefono"`
	Email          string    `json:"email"`
	Active         bool      `json:"activo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

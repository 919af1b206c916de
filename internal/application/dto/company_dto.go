package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name    string `json:"nombre" validate:"required,min=1,max=200"`
	RUT     string `json:"rut" validate:"required,max=20"`
	Address string `json:"direccion" validate:"max=300"`
	Phone   string `json:"telefono" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email,max=200"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name    *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Address *string `json:"direccion" validate:"omitempty,max=300"`
	Phone   *string `json:"telefono" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email,max=200"`
	Status  *string `json:"estado" validate:"omitempty,oneof=active suspended inactive"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	RUT       string    `json:"rut"`
	Address   string    `json:"direccion"`
	Phone     string    `json:"telefono"`
	Email     string    `json:"email"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

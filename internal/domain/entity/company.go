package entity

import "time"

// Company representa una empresa/tenant del sistema. Todas las demás entidades cuelgan de ella.
type Company struct {
	ID        string
	Name      string
	RUT       string // RUT de la empresa matriz, canónico "12345678-5"
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estados de Company.
const (
	CompanyActive    = "active"
	CompanySuspended = "suspended"
	CompanyInactive  = "inactive"
)

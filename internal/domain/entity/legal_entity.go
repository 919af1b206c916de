package entity

import "time"

// LegalEntity razón social: registro tributario bajo el cual operan una o más sucursales.
type LegalEntity struct {
	ID             string
	CompanyID      string
	RUT            string // canónico "76000000-0"
	BusinessName   string // razón social
	LineOfBusiness string // giro
	Address        string
	Commune        string // comuna
	Phone          string
	Email          string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package entity

import "time"

// CostCenter centro de costo usado para imputar gastos y compras.
type CostCenter struct {
	ID          string
	CompanyID   string
	Code        string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

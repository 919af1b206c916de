package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado de la empresa. Puede estar asignado a varias sucursales,
// a una razón social, a un centro de costo y reportar a un jefe (otro empleado).
type Employee struct {
	ID            string
	CompanyID     string
	RUT           string
	FirstNames    string
	LastNames     string
	Email         string
	Phone         string
	Position      string // cargo
	HireDate      *time.Time
	BirthDate     *time.Time
	BaseSalary    decimal.Decimal
	LegalEntityID *string
	CostCenterID  *string
	ManagerID     *string
	Active        bool
	Disability    bool // discapacidad (Ley 21.015)
	PhotoURL      string
	Branches      []BranchRef
	ManagerName   string // solo lectura, resuelto por join
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName nombre completo para listados.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstNames + " " + e.LastNames)
}

// BranchIDs ids de las sucursales asignadas.
func (e *Employee) BranchIDs() []string {
	ids := make([]string, 0, len(e.Branches))
	for _, b := range e.Branches {
		ids = append(ids, b.ID)
	}
	return ids
}

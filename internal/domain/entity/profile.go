package entity

import "time"

// Códigos de módulos del back-office (deben coincidir con el seed de la tabla modulos).
const (
	ModuleEmployees       = "empleados"
	ModuleLegalEntities   = "razones_sociales"
	ModuleCostCenters     = "centros_costo"
	ModuleBranches        = "sucursales"
	ModuleProfiles        = "perfiles"
	ModuleUsers           = "usuarios"
	ModuleDiscounts       = "descuentos"
	ModuleSales           = "ventas"
	ModuleIncomeStatement = "estado_resultados"
	ModuleContest         = "concurso"
	ModuleSettings        = "configuracion"
)

// Module módulo funcional habilitable por perfil.
type Module struct {
	ID          string
	Code        string
	Name        string
	Description string
}

// Profile perfil (rol) con los módulos y sucursales a los que da acceso.
type Profile struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Active      bool
	ModuleCodes []string
	BranchIDs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin informa si el perfil es el administrador (acceso total).
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Name == ProfileAdmin
}

// HasModule informa si el perfil habilita el módulo.
func (p *Profile) HasModule(code string) bool {
	if p == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	for _, c := range p.ModuleCodes {
		if c == code {
			return true
		}
	}
	return false
}

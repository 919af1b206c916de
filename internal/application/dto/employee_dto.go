package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest alta/edición de un empleado. Fechas en formato YYYY-MM-DD.
type EmployeeRequest struct {
	RUT           string           `json:"rut" validate:"required,max=20"`
	FirstNames    string           `json:"nombres" validate:"required,min=1,max=150"`
	LastNames     string           `json:"apellidos" validate:"required,min=1,max=150"`
	Email         string           `json:"email" validate:"omitempty,email,max=200"`
	Phone         string           `json:"telefono" validate:"max=30"`
	Position      string           `json:"cargo" validate:"max=100"`
	HireDate      string           `json:"fecha_ingreso" validate:"omitempty,datetime=2006-01-02"`
	BirthDate     string           `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	BaseSalary    *decimal.Decimal `json:"sueldo_base"`
	LegalEntityID *string          `json:"razon_social_id" validate:"omitempty,uuid"`
	CostCenterID  *string          `json:"centro_costo_id" validate:"omitempty,uuid"`
	ManagerID     *string          `json:"id_jefe" validate:"omitempty,uuid"`
	Active        *bool            `json:"activo"`
	Disability    *bool            `json:"discapacidad"`
	BranchIDs     []string         `json:"sucursales" validate:"omitempty,dive,uuid"`
}

// EmployeeListRequest filtros del listado de empleados.
type EmployeeListRequest struct {
	PageRequest
	Search       string `query:"search"`
	Active       string `query:"activo"`
	BranchID     string `query:"sucursal_id" validate:"omitempty,uuid"`
	CostCenterID string `query:"centro_costo_id" validate:"omitempty,uuid"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID            string              `json:"id"`
	RUT           string              `json:"rut"`
	FirstNames    string              `json:"nombres"`
	LastNames     string              `json:"apellidos"`
	FullName      string              `json:"nombre_completo"`
	Email         string              `json:"email"`
	Phone         string              `json:"telefono"`
	Position      string              `json:"cargo"`
	HireDate      *string             `json:"fecha_ingreso"`
	BirthDate     *string             `json:"fecha_nacimiento"`
	BaseSalary    decimal.Decimal     `json:"sueldo_base"`
	LegalEntityID *string             `json:"razon_social_id"`
	CostCenterID  *string             `json:"centro_costo_id"`
	ManagerID     *string             `json:"id_jefe"`
	ManagerName   string              `json:"nombre_jefe,omitempty"`
	Active        bool                `json:"activo"`
	Disability    bool                `json:"discapacidad"`
	PhotoURL      string              `json:"foto_url"`
	Branches      []BranchRefResponse `json:"sucursales"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// EmployeeImportRequest importación masiva en JSON.
type EmployeeImportRequest struct {
	Rows []EmployeeRequest `json:"rows" validate:"required,min=1,max=5000"`
}

// ImportRowError error de una fila. En JSON la fila 1 es el primer elemento de rows;
// en archivos es el número de fila de la planilla (la 1 es el encabezado).
type ImportRowError struct {
	Row   int    `json:"fila"`
	RUT   string `json:"rut,omitempty"`
	Error string `json:"error"`
}

// ImportResult resumen de la importación.
type ImportResult struct {
	Total   int              `json:"total"`
	Created int              `json:"creados"`
	Errors  []ImportRowError `json:"errores"`
}

// PhotoCrop recorte opcional de la foto (en píxeles de la imagen original).
type PhotoCrop struct {
	X    int `form:"crop_x"`
	Y    int `form:"crop_y"`
	Size int `form:"crop_size"`
}

package entity

import "time"

// Branch representa una sucursal (local físico). Cada sucursal puede tener su propia
// base de datos de punto de venta; las credenciales se guardan en la base principal.
type Branch struct {
	ID            string
	CompanyID     string
	LegalEntityID *string
	Name          string
	Address       string
	Active        bool
	POS           POSConnection
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// POSConnection credenciales de la base de datos de punto de venta de una sucursal.
type POSConnection struct {
	Host     string
	Port     int
	DBName   string
	User     string
	Password string
	SSLMode  string
}

// Configured informa si hay datos suficientes para abrir la conexión.
func (p POSConnection) Configured() bool {
	return p.Host != "" && p.DBName != "" && p.User != ""
}

// BranchRef referencia liviana a una sucursal (para listados y asignaciones).
type BranchRef struct {
	ID   string
	Name string
}

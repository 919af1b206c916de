package dto

import "time"

// BranchRequest alta/edición de una sucursal. Las credenciales POS son opcionales;
// en edición, un db_password vacío conserva el valor guardado.
type BranchRequest struct {
	Name          string  `json:"nombre" validate:"required,min=1,max=150"`
	Address       string  `json:"direccion" validate:"max=300"`
	LegalEntityID *string `json:"razon_social_id" validate:"omitempty,uuid"`
	Active        *bool   `json:"activo"`
	DBHost        string  `json:"db_host" validate:"max=200"`
	DBPort        int     `json:"db_port" validate:"min=0,max=65535"`
	DBName        string  `json:"db_name" validate:"max=100"`
	DBUser        string  `json:"db_user" validate:"max=100"`
	DBPassword    string  `json:"db_password" validate:"max=200"`
	DBSSLMode     string  `json:"db_sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

// BranchResponse salida de una sucursal (nunca incluye la contraseña POS).
type BranchResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Address        string    `json:"direccion"`
	LegalEntityID  *string   `json:"razon_social_id"`
	Active         bool      `json:"activo"`
	DBHost         string    `json:"db_host"`
	DBPort         int       `json:"db_port"`
	DBName         string    `json:"db_name"`
	DBUser         string    `json:"db_user"`
	HasCredentials bool      `json:"tiene_credenciales"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BranchRefResponse referencia corta a una sucursal.
type BranchRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

package dto

import "time"

// SettingRequest valor de una clave de configuración.
type SettingRequest struct {
	Value       string `json:"valor" validate:"max=10000"`
	Description string `json:"descripcion" validate:"max=300"`
}

// SettingResponse clave/valor de configuración.
type SettingResponse struct {
	Key         string    `json:"clave"`
	Value       string    `json:"valor"`
	Description string    `json:"descripcion"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SeasonResponse temporada vigente del concurso (lectura pública).
type SeasonResponse struct {
	Name   string  `json:"nombre"`
	Start  *string `json:"inicio"`
	End    *string `json:"fin"`
	Active bool    `json:"activa"`
	Rules  string  `json:"bases"`
	Open   bool    `json:"abierta"` // activa y dentro de las fechas
}

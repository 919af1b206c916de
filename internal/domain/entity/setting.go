package entity

import "time"

// Claves de configuración usadas por la página pública del concurso.
const (
	SettingSeasonName   = "temporada_nombre"
	SettingSeasonStart  = "temporada_inicio"
	SettingSeasonEnd    = "temporada_fin"
	SettingSeasonActive = "temporada_activa"
	SettingSeasonRules  = "temporada_bases"
)

// SeasonPrefix prefijo de las claves de temporada.
const SeasonPrefix = "temporada_"

// Setting par clave/valor de configuracion_sistema por empresa.
type Setting struct {
	CompanyID   string
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}

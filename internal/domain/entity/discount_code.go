package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento.
const (
	DiscountPercent = "porcentaje"
	DiscountAmount  = "monto"
)

// Motivos por los que un código de descuento se rechaza.
const (
	DiscountNotFound  = "no_existe"
	DiscountInactive  = "inactivo"
	DiscountNotYet    = "no_vigente"
	DiscountExpired   = "expirado"
	DiscountExhausted = "agotado"
)

// DiscountCode código de descuento con vigencia por fechas y tope de usos.
type DiscountCode struct {
	ID          string
	CompanyID   string
	Code        string // siempre en mayúsculas
	Description string
	Type        string // porcentaje | monto
	Value       decimal.Decimal
	StartDate   *time.Time // fecha (sin hora); nil = sin inicio
	EndDate     *time.Time // fecha inclusiva; nil = sin término
	MaxUses     *int       // nil = ilimitado
	UsedCount   int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Evaluate devuelve "" si el código es usable en el instante now, o el motivo del rechazo.
// Orden de evaluación: activo, inicio, término, usos.
func (d *DiscountCode) Evaluate(now time.Time) string {
	if d == nil {
		return DiscountNotFound
	}
	if !d.Active {
		return DiscountInactive
	}
	if d.StartDate != nil && now.Before(startOfDay(*d.StartDate, now.Location())) {
		return DiscountNotYet
	}
	if d.EndDate != nil && !now.Before(startOfDay(*d.EndDate, now.Location()).AddDate(0, 0, 1)) {
		return DiscountExpired
	}
	if d.MaxUses != nil && d.UsedCount >= *d.MaxUses {
		return DiscountExhausted
	}
	return ""
}

// RemainingUses usos disponibles; nil si es ilimitado.
func (d *DiscountCode) RemainingUses() *int {
	if d.MaxUses == nil {
		return nil
	}
	left := *d.MaxUses - d.UsedCount
	if left < 0 {
		left = 0
	}
	return &left
}

// startOfDay interpreta la fecha calendario de t en loc, a las 00:00.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

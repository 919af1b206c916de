package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountCodeRequest alta/edición de un código de descuento.
type DiscountCodeRequest struct {
	Code        string          `json:"codigo" validate:"required,min=3,max=40,alphanumunicode"`
	Description string          `json:"descripcion" validate:"max=300"`
	Type        string          `json:"tipo" validate:"required,oneof=porcentaje monto"`
	Value       decimal.Decimal `json:"valor"`
	StartDate   string          `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string          `json:"fecha_fin" validate:"omitempty,datetime=2006-01-02"`
	MaxUses     *int            `json:"usos_maximos" validate:"omitempty,min=0"`
	Active      *bool           `json:"activo"`
}

// DiscountCodeResponse salida de un código de descuento.
type DiscountCodeResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"codigo"`
	Description   string          `json:"descripcion"`
	Type          string          `json:"tipo"`
	Value         decimal.Decimal `json:"valor"`
	StartDate     *string         `json:"fecha_inicio"`
	EndDate       *string         `json:"fecha_fin"`
	MaxUses       *int            `json:"usos_maximos"`
	UsedCount     int             `json:"usos_actuales"`
	RemainingUses *int            `json:"usos_restantes"`
	Active        bool            `json:"activo"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DiscountValidationResponse resultado de la validación pública.
type DiscountValidationResponse struct {
	Valid  bool                  `json:"valido"`
	Reason string                `json:"motivo,omitempty"`
	Code   *DiscountPublicDetail `json:"codigo,omitempty"`
}

// DiscountPublicDetail datos que se exponen públicamente de un código válido.
type DiscountPublicDetail struct {
	Code        string          `json:"codigo"`
	Description string          `json:"descripcion"`
	Type        string          `json:"tipo"`
	Value       decimal.Decimal `json:"valor"`
	EndDate     *string         `json:"fecha_fin"`
}

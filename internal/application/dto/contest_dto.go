package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContestEntryRequest campos del formulario público de participación (multipart).
type ContestEntryRequest struct {
	RUT           string `form:"rut" validate:"required,max=20"`
	Name          string `form:"nombre" validate:"required,min=2,max=200"`
	Email         string `form:"email" validate:"required,email"`
	Phone         string `form:"telefono" validate:"required,min=8,max=20"`
	ReceiptNumber string `form:"numero_boleta" validate:"required,min=1,max=40"`
	Amount        string `form:"monto" validate:"required"`
	ReceiptDate   string `form:"fecha_boleta" validate:"omitempty,datetime=2006-01-02"`
	BranchID      string `form:"sucursal_id" validate:"omitempty,uuid"`
}

// ContestEntryResponse salida de una participación.
type ContestEntryResponse struct {
	ID            string          `json:"id"`
	RUT           string          `json:"rut"`
	Name          string          `json:"nombre"`
	Email         string          `json:"email"`
	Phone         string          `json:"telefono"`
	ReceiptNumber string          `json:"numero_boleta"`
	Amount        decimal.Decimal `json:"monto"`
	ReceiptDate   *string         `json:"fecha_boleta"`
	BranchID      *string         `json:"sucursal_id"`
	ImageURL      string          `json:"imagen_url"`
	Status        string          `json:"estado"`
	ReviewNote    string          `json:"nota_revision,omitempty"`
	Season        string          `json:"temporada"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ContestListRequest filtros del listado de participaciones.
type ContestListRequest struct {
	PageRequest
	Status   string `query:"estado" validate:"omitempty,oneof=pendiente valido invalido"`
	Search   string `query:"search"`
	Season   string `query:"temporada"`
	BranchID string `query:"sucursal_id" validate:"omitempty,uuid"`
}

// ContestReviewRequest revisión manual de una participación.
type ContestReviewRequest struct {
	Status string `json:"estado" validate:"required,oneof=pendiente valido invalido"`
	Note   string `json:"nota" validate:"max=500"`
}

// ReceiptReading lectura asistida (OCR) de una boleta. Los campos son sugerencias
// que el participante confirma en el formulario.
type ReceiptReading struct {
	ReceiptNumber string          `json:"numero_boleta"`
	Amount        decimal.Decimal `json:"monto"`
	Date          string          `json:"fecha"`
	IssuerRUT     string          `json:"rut_emisor"`
	Confidence    float64         `json:"confianza"`
}

package dto

import "github.com/shopspring/decimal"

// PeriodRequest rango de fechas YYYY-MM-DD; vacío = mes en curso.
type PeriodRequest struct {
	From string `query:"desde"`
	To   string `query:"hasta"`
}

// PeriodDTO período efectivamente consultado.
type PeriodDTO struct {
	From string `json:"desde"`
	To   string `json:"hasta"`
}

// BranchSalesRequest parámetros del reporte por sucursal.
type BranchSalesRequest struct {
	PeriodRequest
	Top int `query:"top"`
}

// ConsolidatedSalesRequest parámetros del consolidado. Branches: ids separados por coma; vacío = todas las activas.
type ConsolidatedSalesRequest struct {
	PeriodRequest
	Branches string `query:"sucursales"`
}

// SalesTotalsDTO totales del período.
type SalesTotalsDTO struct {
	Net           decimal.Decimal `json:"neto"`
	Tax           decimal.Decimal `json:"iva"`
	Gross         decimal.Decimal `json:"bruto"`
	Discounts     decimal.Decimal `json:"descuentos"`
	Tickets       int             `json:"tickets"`
	AverageTicket decimal.Decimal `json:"ticket_promedio"`
}

// DaySalesDTO venta de un día.
type DaySalesDTO struct {
	Date    string          `json:"fecha"`
	Net     decimal.Decimal `json:"neto"`
	Tickets int             `json:"tickets"`
}

// ProductSalesDTO producto del ranking.
type ProductSalesDTO struct {
	Code     string          `json:"codigo"`
	Name     string          `json:"nombre"`
	Quantity decimal.Decimal `json:"cantidad"`
	Net      decimal.Decimal `json:"neto"`
	SharePct decimal.Decimal `json:"participacion_pct"`
}

// PaymentSalesDTO venta por medio de pago.
type PaymentSalesDTO struct {
	Method   string          `json:"medio_pago"`
	Amount   decimal.Decimal `json:"monto"`
	Tickets  int             `json:"tickets"`
	SharePct decimal.Decimal `json:"participacion_pct"`
}

// BranchSalesReport reporte de ventas de una sucursal.
type BranchSalesReport struct {
	BranchID   string            `json:"sucursal_id"`
	BranchName string            `json:"sucursal"`
	Period     PeriodDTO         `json:"periodo"`
	Totals     SalesTotalsDTO    `json:"totales"`
	ByDay      []DaySalesDTO     `json:"por_dia"`
	Top        []ProductSalesDTO `json:"top_productos"`
	ByPayment  []PaymentSalesDTO `json:"por_medio_pago"`
}

// BranchTotalsDTO fila del consolidado.
type BranchTotalsDTO struct {
	BranchID   string          `json:"sucursal_id"`
	BranchName string          `json:"sucursal"`
	Totals     *SalesTotalsDTO `json:"totales,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// ConsolidatedSalesReport consolidado multi-sucursal.
type ConsolidatedSalesReport struct {
	Period   PeriodDTO         `json:"periodo"`
	Totals   SalesTotalsDTO    `json:"totales"`
	Branches []BranchTotalsDTO `json:"sucursales"`
}

// SyncResult resultado de la sincronización de ventas diarias al resumen central.
type SyncResult struct {
	BranchID string    `json:"sucursal_id"`
	Period   PeriodDTO `json:"periodo"`
	Days     int       `json:"dias"`
}

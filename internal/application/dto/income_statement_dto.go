package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeStatementRequest filtros del estado de resultados.
type IncomeStatementRequest struct {
	PeriodRequest
	BranchID     string `query:"sucursal_id" validate:"omitempty,uuid"`
	CostCenterID string `query:"centro_costo_id" validate:"omitempty,uuid"`
}

// ExpenseLineDTO gasto por categoría.
type ExpenseLineDTO struct {
	Category string          `json:"categoria"`
	Amount   decimal.Decimal `json:"monto"`
	SharePct decimal.Decimal `json:"participacion_pct"`
}

// IncomeStatementMonthDTO columna mensual del estado de resultados.
type IncomeStatementMonthDTO struct {
	Month        string          `json:"mes"`
	Label        string          `json:"etiqueta"`
	Revenue      decimal.Decimal `json:"ingresos"`
	CostOfSales  decimal.Decimal `json:"costo_ventas"`
	GrossMargin  decimal.Decimal `json:"margen_bruto"`
	Expenses     decimal.Decimal `json:"gastos"`
	OperatingRes decimal.Decimal `json:"resultado_operacional"`
}

// IncomeStatementDTO estado de resultados del período.
type IncomeStatementDTO struct {
	Period          PeriodDTO                 `json:"periodo"`
	BranchID        string                    `json:"sucursal_id,omitempty"`
	CostCenterID    string                    `json:"centro_costo_id,omitempty"`
	Revenue         decimal.Decimal           `json:"ingresos"`
	CostOfSales     decimal.Decimal           `json:"costo_ventas"`
	GrossMargin     decimal.Decimal           `json:"margen_bruto"`
	GrossMarginPct  decimal.Decimal           `json:"margen_bruto_pct"`
	Expenses        []ExpenseLineDTO          `json:"gastos"`
	TotalExpenses   decimal.Decimal           `json:"total_gastos"`
	OperatingResult decimal.Decimal           `json:"resultado_operacional"`
	OperatingPct    decimal.Decimal           `json:"resultado_operacional_pct"`
	Months          []IncomeStatementMonthDTO `json:"meses"`
	GeneratedAt     time.Time                 `json:"generado_en"`
}

// PurchaseRequest alta de una compra.
type PurchaseRequest struct {
	Date         string          `json:"fecha" validate:"required,datetime=2006-01-02"`
	BranchID     *string         `json:"sucursal_id" validate:"omitempty,uuid"`
	CostCenterID *string         `json:"centro_costo_id" validate:"omitempty,uuid"`
	Supplier     string          `json:"proveedor" validate:"required,max=200"`
	DocumentNo   string          `json:"numero_documento" validate:"max=50"`
	Net          decimal.Decimal `json:"neto"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"fecha"`
	BranchID     *string         `json:"sucursal_id"`
	CostCenterID *string         `json:"centro_costo_id"`
	Supplier     string          `json:"proveedor"`
	DocumentNo   string          `json:"numero_documento"`
	Net          decimal.Decimal `json:"neto"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ExpenseRequest alta de un gasto.
type ExpenseRequest struct {
	Date         string          `json:"fecha" validate:"required,datetime=2006-01-02"`
	BranchID     *string         `json:"sucursal_id" validate:"omitempty,uuid"`
	CostCenterID *string         `json:"centro_costo_id" validate:"omitempty,uuid"`
	Category     string          `json:"categoria" validate:"required,max=100"`
	Description  string          `json:"descripcion" validate:"max=300"`
	Amount       decimal.Decimal `json:"monto"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"fecha"`
	BranchID     *string         `json:"sucursal_id"`
	CostCenterID *string         `json:"centro_costo_id"`
	Category     string          `json:"categoria"`
	Description  string          `json:"descripcion"`
	Amount       decimal.Decimal `json:"monto"`
	CreatedAt    time.Time       `json:"created_at"`
}

// LedgerListRequest filtros de los listados de compras y gastos.
type LedgerListRequest struct {
	PageRequest
	IncomeStatementRequest
}

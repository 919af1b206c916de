package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// PeriodFilter rango de fechas (inclusive) y filtros opcionales del estado de resultados.
type PeriodFilter struct {
	From         time.Time
	To           time.Time
	BranchID     string
	CostCenterID string
}

// MonthAmount monto agregado por mes ("2026-03").
type MonthAmount struct {
	Month  string
	Amount decimal.Decimal
}

// CategoryAmount monto agregado por categoría de gasto.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// IncomeStatementRepository consultas de solo lectura que alimentan el estado de resultados.
// Los montos faltantes se devuelven como cero (COALESCE en SQL).
type IncomeStatementRepository interface {
	// SalesByMonth suma ventas_resumen por mes. El filtro de centro de costo no aplica a ventas.
	SalesByMonth(ctx context.Context, companyID string, f PeriodFilter) ([]MonthAmount, error)
	// PurchasesByMonth suma compras netas por mes (costo de ventas).
	PurchasesByMonth(ctx context.Context, companyID string, f PeriodFilter) ([]MonthAmount, error)
	// ExpensesByMonth suma gastos por mes.
	ExpensesByMonth(ctx context.Context, companyID string, f PeriodFilter) ([]MonthAmount, error)
	// ExpensesByCategory suma gastos por categoría, de mayor a menor.
	ExpensesByCategory(ctx context.Context, companyID string, f PeriodFilter) ([]CategoryAmount, error)
}

// LedgerRepository escritura y listado de los movimientos que alimentan el estado de resultados.
type LedgerRepository interface {
	CreatePurchase(ctx context.Context, p *entity.Purchase) error
	ListPurchases(ctx context.Context, companyID string, f PeriodFilter, limit, offset int) ([]*entity.Purchase, int, error)
	DeletePurchase(ctx context.Context, companyID, id string) error

	CreateExpense(ctx context.Context, e *entity.Expense) error
	ListExpenses(ctx context.Context, companyID string, f PeriodFilter, limit, offset int) ([]*entity.Expense, int, error)
	DeleteExpense(ctx context.Context, companyID, id string) error

	// UpsertDailySales inserta o reemplaza la venta diaria (empresa, sucursal, fecha).
	UpsertDailySales(ctx context.Context, rows []entity.DailySales) error
}

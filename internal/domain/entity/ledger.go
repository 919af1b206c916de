package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra imputada a una sucursal y/o centro de costo (costo de ventas).
type Purchase struct {
	ID           string
	CompanyID    string
	BranchID     *string
	CostCenterID *string
	Date         time.Time
	Supplier     string
	DocumentNo   string
	Net          decimal.Decimal
	CreatedAt    time.Time
}

// Expense gasto operacional imputado a un centro de costo.
type Expense struct {
	ID           string
	CompanyID    string
	BranchID     *string
	CostCenterID *string
	Date         time.Time
	Category     string
	Description  string
	Amount       decimal.Decimal
	CreatedAt    time.Time
}

// DailySales venta diaria consolidada de una sucursal (importada desde el punto de venta).
type DailySales struct {
	CompanyID string
	BranchID  string
	Date      time.Time
	Net       decimal.Decimal
	Tickets   int
}

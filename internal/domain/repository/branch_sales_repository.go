package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// SalesSummary totales de venta de una sucursal en un período.
type SalesSummary struct {
	Net       decimal.Decimal
	Tax       decimal.Decimal
	Gross     decimal.Decimal
	Tickets   int
	Discounts decimal.Decimal
}

// DaySales venta de un día.
type DaySales struct {
	Date    time.Time
	Net     decimal.Decimal
	Tickets int
}

// ProductSales ranking de productos vendidos.
type ProductSales struct {
	Code     string
	Name     string
	Quantity decimal.Decimal
	Net      decimal.Decimal
}

// PaymentSales venta agrupada por medio de pago.
type PaymentSales struct {
	Method  string
	Amount  decimal.Decimal
	Tickets int
}

// BranchSalesReader lectura de la base de punto de venta de UNA sucursal.
// La conexión subyacente es propiedad del reader: el caller debe llamar Close
// (normalmente con defer) en todos los caminos.
type BranchSalesReader interface {
	Ping(ctx context.Context) error
	Summary(ctx context.Context, from, to time.Time) (SalesSummary, error)
	ByDay(ctx context.Context, from, to time.Time) ([]DaySales, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSales, error)
	ByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentSales, error)
	Close() error
}

// BranchConnector abre una conexión de corta vida a la base de una sucursal.
type BranchConnector interface {
	Open(ctx context.Context, conn entity.POSConnection) (BranchSalesReader, error)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/config"
)

var (
	_ repository.BranchConnector   = (*BranchConnector)(nil)
	_ repository.BranchSalesReader = (*BranchSalesRepo)(nil)
)

// branchPoolLimits pool chico y de vida corta: se abre y se cierra dentro del mismo request.
var branchPoolLimits = PoolLimits{
	MaxConns:        4,
	MinConns:        0,
	MaxConnLifetime: 5 * time.Minute,
	MaxConnIdleTime: time.Minute,
}

// BranchConnector abre pools contra la base de punto de venta de cada sucursal.
type BranchConnector struct{}

// NewBranchConnector construye el conector.
func NewBranchConnector() *BranchConnector {
	return &BranchConnector{}
}

// Open crea el pool con las credenciales guardadas de la sucursal y verifica la conexión.
// El caller es dueño del reader y debe cerrarlo.
func (c *BranchConnector) Open(ctx context.Context, conn entity.POSConnection) (repository.BranchSalesReader, error) {
	dsn := config.DBConfig{
		Host:     conn.Host,
		Port:     conn.Port,
		User:     conn.User,
		Password: conn.Password,
		DBName:   conn.DBName,
		SSLMode:  conn.SSLMode,
	}.DSN()
	pool, err := openPool(ctx, dsn, branchPoolLimits)
	if err != nil {
		return nil, err
	}
	return &BranchSalesRepo{pool: pool}, nil
}

// BranchSalesRepo consultas de venta sobre las tablas ventas y ventas_detalle del punto de venta.
// Las ventas anuladas no se consideran.
type BranchSalesRepo struct {
	pool *pgxpool.Pool
}

func (r *BranchSalesRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Summary totales del período [from, to).
func (r *BranchSalesRepo) Summary(ctx context.Context, from, to time.Time) (repository.SalesSummary, error) {
	const query = `
	SELECT COALESCE(SUM(neto), 0), COALESCE(SUM(iva), 0), COALESCE(SUM(total), 0),
	       COUNT(*), COALESCE(SUM(descuento), 0)
	FROM ventas
	WHERE fecha >= $1 AND fecha < $2 AND NOT anulada`
	var s repository.SalesSummary
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&s.Net, &s.Tax, &s.Gross, &s.Tickets, &s.Discounts); err != nil {
		return s, fmt.Errorf("resumen de ventas: %w", err)
	}
	return s, nil
}

// ByDay venta neta y tickets por día calendario.
func (r *BranchSalesRepo) ByDay(ctx context.Context, from, to time.Time) ([]repository.DaySales, error) {
	const query = `
	SELECT fecha::date AS dia, COALESCE(SUM(neto), 0), COUNT(*)
	FROM ventas
	WHERE fecha >= $1 AND fecha < $2 AND NOT anulada
	GROUP BY dia
	ORDER BY dia`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("ventas por día: %w", err)
	}
	defer rows.Close()
	var out []repository.DaySales
	for rows.Next() {
		var d repository.DaySales
		if err := rows.Scan(&d.Date, &d.Net, &d.Tickets); err != nil {
			return nil, fmt.Errorf("scan venta por día: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// TopProducts ranking por venta neta.
func (r *BranchSalesRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.ProductSales, error) {
	const query = `
	SELECT d.codigo_producto, MAX(d.nombre_producto), COALESCE(SUM(d.cantidad), 0), COALESCE(SUM(d.neto), 0) AS neto
	FROM ventas_detalle d
	JOIN ventas v ON v.id = d.venta_id
	WHERE v.fecha >= $1 AND v.fecha < $2 AND NOT v.anulada
	GROUP BY d.codigo_producto
	ORDER BY neto DESC
	LIMIT $3`
	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()
	var out []repository.ProductSales
	for rows.Next() {
		var p repository.ProductSales
		if err := rows.Scan(&p.Code, &p.Name, &p.Quantity, &p.Net); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ByPaymentMethod venta bruta por medio de pago.
func (r *BranchSalesRepo) ByPaymentMethod(ctx context.Context, from, to time.Time) ([]repository.PaymentSales, error) {
	const query = `
	SELECT COALESCE(NULLIF(medio_pago, ''), 'otro') AS medio, COALESCE(SUM(total), 0) AS monto, COUNT(*)
	FROM ventas
	WHERE fecha >= $1 AND fecha < $2 AND NOT anulada
	GROUP BY medio
	ORDER BY monto DESC`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("ventas por medio de pago: %w", err)
	}
	defer rows.Close()
	var out []repository.PaymentSales
	for rows.Next() {
		var p repository.PaymentSales
		if err := rows.Scan(&p.Method, &p.Amount, &p.Tickets); err != nil {
			return nil, fmt.Errorf("scan medio de pago: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close libera todas las conexiones del pool de la sucursal.
func (r *BranchSalesRepo) Close() error {
	r.pool.Close()
	return nil
}

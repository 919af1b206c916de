package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.IncomeStatementRepository = (*IncomeStatementRepo)(nil)

// IncomeStatementRepo consultas de solo lectura que alimentan el estado de resultados.
type IncomeStatementRepo struct {
	q Querier
}

// NewIncomeStatementRepository construye el adaptador del estado de resultados.
func NewIncomeStatementRepository(q Querier) *IncomeStatementRepo {
	return &IncomeStatementRepo{q: q}
}

// SalesByMonth suma ventas_resumen por mes. Solo filtra por sucursal: la venta no se imputa a centros de costo.
func (r *IncomeStatementRepo) SalesByMonth(ctx context.Context, companyID string, f repository.PeriodFilter) ([]repository.MonthAmount, error) {
	const query = `
	SELECT to_char(fecha, 'YYYY-MM') AS mes, COALESCE(SUM(neto), 0)
	FROM ventas_resumen
	WHERE empresa_id = $1
	  AND fecha BETWEEN $2::date AND $3::date
	  AND ($4 = '' OR sucursal_id::text = $4)
	GROUP BY mes
	ORDER BY mes`
	return r.monthly(ctx, "ventas", query, companyID, f.From.Format(dateOnly), f.To.Format(dateOnly), f.BranchID)
}

// PurchasesByMonth suma compras netas por mes (costo de ventas).
func (r *IncomeStatementRepo) PurchasesByMonth(ctx context.Context, companyID string, f repository.PeriodFilter) ([]repository.MonthAmount, error) {
	const query = `
	SELECT to_char(fecha, 'YYYY-MM') AS mes, COALESCE(SUM(neto), 0)
	FROM compras
	WHERE empresa_id = $1
	  AND fecha BETWEEN $2::date AND $3::date
	  AND ($4 = '' OR sucursal_id::text = $4)
	  AND ($5 = '' OR centro_costo_id::text = $5)
	GROUP BY mes
	ORDER BY mes`
	return r.monthly(ctx, "compras", query, companyID, f.From.Format(dateOnly), f.To.Format(dateOnly), f.BranchID, f.CostCenterID)
}

// ExpensesByMonth suma gastos por mes.
func (r *IncomeStatementRepo) ExpensesByMonth(ctx context.Context, companyID string, f repository.PeriodFilter) ([]repository.MonthAmount, error) {
	const query = `
	SELECT to_char(fecha, 'YYYY-MM') AS mes, COALESCE(SUM(monto), 0)
	FROM gastos
	WHERE empresa_id = $1
	  AND fecha BETWEEN $2::date AND $3::date
	  AND ($4 = '' OR sucursal_id::text = $4)
	  AND ($5 = '' OR centro_costo_id::text = $5)
	GROUP BY mes
	ORDER BY mes`
	return r.monthly(ctx, "gastos", query, companyID, f.From.Format(dateOnly), f.To.Format(dateOnly), f.BranchID, f.CostCenterID)
}

// ExpensesByCategory suma gastos por categoría, de mayor a menor.
func (r *IncomeStatementRepo) ExpensesByCategory(ctx context.Context, companyID string, f repository.PeriodFilter) ([]repository.CategoryAmount, error) {
	const query = `
	SELECT categoria, COALESCE(SUM(monto), 0) AS total
	FROM gastos
	WHERE empresa_id = $1
	  AND fecha BETWEEN $2::date AND $3::date
	  AND ($4 = '' OR sucursal_id::text = $4)
	  AND ($5 = '' OR centro_costo_id::text = $5)
	GROUP BY categoria
	ORDER BY total DESC, categoria`
	rows, err := r.q.Query(ctx, query, companyID, f.From.Format(dateOnly), f.To.Format(dateOnly), f.BranchID, f.CostCenterID)
	if err != nil {
		return nil, fmt.Errorf("gastos por categoría: %w", err)
	}
	defer rows.Close()
	var out []repository.CategoryAmount
	for rows.Next() {
		var c repository.CategoryAmount
		if err := rows.Scan(&c.Category, &c.Amount); err != nil {
			return nil, fmt.Errorf("scan gasto por categoría: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *IncomeStatementRepo) monthly(ctx context.Context, what, query string, args ...any) ([]repository.MonthAmount, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s por mes: %w", what, err)
	}
	defer rows.Close()
	var out []repository.MonthAmount
	for rows.Next() {
		var m repository.MonthAmount
		if err := rows.Scan(&m.Month, &m.Amount); err != nil {
			return nil, fmt.Errorf("scan %s por mes: %w", what, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

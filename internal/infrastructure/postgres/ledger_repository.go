package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/multierr"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

const dateOnly = "2006-01-02"

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo compras, gastos y venta diaria consolidada (insumos del estado de resultados).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// ── Compras ──────────────────────────────────────────────────────────────────

func (r *LedgerRepo) CreatePurchase(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO compras (id, empresa_id, sucursal_id, centro_costo_id, fecha, proveedor, numero_documento, neto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.BranchID, p.CostCenterID, p.Date, p.Supplier, p.DocumentNo, p.Net, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *LedgerRepo) ListPurchases(ctx context.Context, companyID string, f repository.PeriodFilter, limit, offset int) ([]*entity.Purchase, int, error) {
	query := `
		SELECT id, empresa_id, sucursal_id, centro_costo_id, fecha, proveedor, numero_documento, neto, created_at,
		       COUNT(*) OVER()
		FROM compras
		WHERE empresa_id = $1
		  AND fecha BETWEEN $2::date AND $3::date
		  AND ($4 = '' OR sucursal_id::text = $4)
		  AND ($5 = '' OR centro_costo_id::text = $5)
		ORDER BY fecha DESC, created_at DESC
		LIMIT $6 OFFSET $7`
	rows, err := r.q.Query(ctx, query, companyID, f.From.Format(dateOnly), f.To.Format(dateOnly), f.BranchID, f.CostCenterID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var (
		list  []*entity.Purchase
		total int
	)
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.BranchID, &p.CostCenterID, &p.Date, &p.Supplier, &p.DocumentNo, &p.Net, &p.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

func (r *LedgerRepo) DeletePurchase(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM compras WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return mustAffect(tag)
}

// ── Gastos ───────────────────────────────────────────────────────────────────

func (r *LedgerRepo) CreateExpense(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO gastos (id, empresa_id, sucursal_id, centro_costo_id, fecha, categoria, descripcion, monto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.BranchID, e.CostCenterID, e.Date, e.Category, e.Description, e.Amount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *LedgerRepo) ListExpenses(ctx context.Context, companyID string, f repository.PeriodFilter, limit, offset int) ([]*entity.Expense, int, error) {
	query := `
		SELECT id, empresa_id, sucursal_id, centro_costo_id, fecha, categoria, descripcion, monto, created_at,
		       COUNT(*) OVER()
		FROM gastos
		WHERE empresa_id = $1
		  AND fecha BETWEEN $2::date AND $3::date
		  AND ($4 = '' OR sucursal_id::text = $4)
		  AND ($5 = '' OR centro_costo_id::text = $5)
		ORDER BY fecha DESC, created_at DESC
		LIMIT $6 OFFSET $7`
	rows, err := r.q.Query(ctx, query, companyID, f.From.Format(dateOnly), f.To.Format(dateOnly), f.BranchID, f.CostCenterID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var (
		list  []*entity.Expense
		total int
	)
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.BranchID, &e.CostCenterID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}

func (r *LedgerRepo) DeleteExpense(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM gastos WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return mustAffect(tag)
}

// ── Venta diaria ─────────────────────────────────────────────────────────────

// UpsertDailySales envía todas las filas en un solo batch; cada fila reemplaza la del mismo día.
func (r *LedgerRepo) UpsertDailySales(ctx context.Context, rows []entity.DailySales) error {
	if len(rows) == 0 {
		return nil
	}
	const query = `
		INSERT INTO ventas_resumen (empresa_id, sucursal_id, fecha, neto, tickets, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, now())
		ON CONFLICT (empresa_id, sucursal_id, fecha)
		DO UPDATE SET neto = EXCLUDED.neto, tickets = EXCLUDED.tickets, updated_at = now()`
	batch := &pgx.Batch{}
	for _, d := range rows {
		batch.Queue(query, d.CompanyID, d.BranchID, d.Date.Format(dateOnly), d.Net, d.Tickets)
	}
	res := r.q.SendBatch(ctx, batch)
	for range rows {
		if _, err := res.Exec(); err != nil {
			return multierr.Append(fmt.Errorf("upsert daily sales: %w", err), res.Close())
		}
	}
	return res.Close()
}

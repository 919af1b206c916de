package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.DiscountCodeRepository = (*DiscountCodeRepo)(nil)

// DiscountCodeRepo implementación de DiscountCodeRepository sobre PostgreSQL.
type DiscountCodeRepo struct {
	q Querier
}

// NewDiscountCodeRepository construye el adaptador. Acepta pool o tx (Querier).
func NewDiscountCodeRepository(q Querier) *DiscountCodeRepo {
	return &DiscountCodeRepo{q: q}
}

const discountColumns = `id, empresa_id, codigo, descripcion, tipo, valor, fecha_inicio, fecha_fin,
	usos_maximos, usos_actuales, activo, created_at, updated_at`

func (r *DiscountCodeRepo) Create(ctx context.Context, d *entity.DiscountCode) error {
	query := `
		INSERT INTO codigos_descuento (` + discountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.Code, d.Description, d.Type, d.Value, d.StartDate, d.EndDate,
		d.MaxUses, d.UsedCount, d.Active, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("codigo", d.Code)
		}
		return fmt.Errorf("insert discount code: %w", err)
	}
	return nil
}

func (r *DiscountCodeRepo) GetByID(ctx context.Context, companyID, id string) (*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM codigos_descuento WHERE empresa_id = $1 AND id = $2`
	d, err := scanDiscount(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount code: %w", err)
	}
	return d, nil
}

func (r *DiscountCodeRepo) GetByCode(ctx context.Context, companyID, code string) (*entity.DiscountCode, error) {
	query := `SELECT ` + discountColumns + ` FROM codigos_descuento WHERE empresa_id = $1 AND codigo = $2`
	d, err := scanDiscount(r.q.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount code by code: %w", err)
	}
	return d, nil
}

// Update no toca usos_actuales: el contador solo avanza vía Redeem.
func (r *DiscountCodeRepo) Update(ctx context.Context, d *entity.DiscountCode) error {
	query := `
		UPDATE codigos_descuento
		SET codigo = $3, descripcion = $4, tipo = $5, valor = $6, fecha_inicio = $7, fecha_fin = $8,
		    usos_maximos = $9, activo = $10, updated_at = $11
		WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		d.CompanyID, d.ID, d.Code, d.Description, d.Type, d.Value, d.StartDate, d.EndDate,
		d.MaxUses, d.Active, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("codigo", d.Code)
		}
		return fmt.Errorf("update discount code: %w", err)
	}
	return mustAffect(tag)
}

func (r *DiscountCodeRepo) List(ctx context.Context, companyID string, onlyActive bool, limit, offset int) ([]*entity.DiscountCode, int, error) {
	query := `
		SELECT ` + discountColumns + `, COUNT(*) OVER()
		FROM codigos_descuento
		WHERE empresa_id = $1 AND (NOT $2 OR activo)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, onlyActive, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list discount codes: %w", err)
	}
	defer rows.Close()
	var (
		list  []*entity.DiscountCode
		total int
	)
	for rows.Next() {
		d, err := scanDiscount(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan discount code: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

func (r *DiscountCodeRepo) SetActive(ctx context.Context, companyID, id string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE codigos_descuento SET activo = $3, updated_at = now() WHERE empresa_id = $1 AND id = $2`, companyID, id, active)
	if err != nil {
		return fmt.Errorf("set discount code active: %w", err)
	}
	return mustAffect(tag)
}

func (r *DiscountCodeRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM codigos_descuento WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete discount code: %w", err)
	}
	return mustAffect(tag)
}

// Redeem incrementa usos_actuales en una sola sentencia condicionada: dos canjes concurrentes
// del último uso disponible no pueden pasar ambos. La fecha se compara como fecha calendario
// (fecha_fin inclusiva).
func (r *DiscountCodeRepo) Redeem(ctx context.Context, companyID, code string, now time.Time) (bool, error) {
	query := `
		UPDATE codigos_descuento
		SET usos_actuales = usos_actuales + 1, updated_at = now()
		WHERE empresa_id = $1 AND codigo = $2 AND activo
		  AND (fecha_inicio IS NULL OR fecha_inicio <= $3::date)
		  AND (fecha_fin IS NULL OR fecha_fin >= $3::date)
		  AND (usos_maximos IS NULL OR usos_actuales < usos_maximos)`
	tag, err := r.q.Exec(ctx, query, companyID, code, now.Format("2006-01-02"))
	if err != nil {
		return false, fmt.Errorf("redeem discount code: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanDiscount(row pgxScanner, extra ...any) (*entity.DiscountCode, error) {
	var d entity.DiscountCode
	dest := []any{
		&d.ID, &d.CompanyID, &d.Code, &d.Description, &d.Type, &d.Value, &d.StartDate, &d.EndDate,
		&d.MaxUses, &d.UsedCount, &d.Active, &d.CreatedAt, &d.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &d, nil
}

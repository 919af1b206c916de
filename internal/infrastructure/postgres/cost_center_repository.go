package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.CostCenterRepository = (*CostCenterRepo)(nil)

// CostCenterRepo implementación de CostCenterRepository sobre PostgreSQL.
type CostCenterRepo struct {
	q Querier
}

// NewCostCenterRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCostCenterRepository(q Querier) *CostCenterRepo {
	return &CostCenterRepo{q: q}
}

const costCenterColumns = `id, empresa_id, codigo, nombre, descripcion, activo, created_at, updated_at`

func (r *CostCenterRepo) Create(ctx context.Context, cc *entity.CostCenter) error {
	query := `INSERT INTO centros_costos (` + costCenterColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, cc.ID, cc.CompanyID, cc.Code, cc.Name, cc.Description, cc.Active, cc.CreatedAt, cc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("codigo", cc.Code)
		}
		return fmt.Errorf("insert cost center: %w", err)
	}
	return nil
}

func (r *CostCenterRepo) GetByID(ctx context.Context, companyID, id string) (*entity.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM centros_costos WHERE empresa_id = $1 AND id = $2`
	cc, err := scanCostCenter(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center: %w", err)
	}
	return cc, nil
}

func (r *CostCenterRepo) GetByCode(ctx context.Context, companyID, code string) (*entity.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM centros_costos WHERE empresa_id = $1 AND codigo = $2`
	cc, err := scanCostCenter(r.q.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center by code: %w", err)
	}
	return cc, nil
}

func (r *CostCenterRepo) Update(ctx context.Context, cc *entity.CostCenter) error {
	query := `
		UPDATE centros_costos
		SET codigo = $3, nombre = $4, descripcion = $5, activo = $6, updated_at = $7
		WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query, cc.CompanyID, cc.ID, cc.Code, cc.Name, cc.Description, cc.Active, cc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("codigo", cc.Code)
		}
		return fmt.Errorf("update cost center: %w", err)
	}
	return mustAffect(tag)
}

func (r *CostCenterRepo) List(ctx context.Context, companyID string, onlyActive bool) ([]*entity.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM centros_costos
		WHERE empresa_id = $1 AND (NOT $2 OR activo)
		ORDER BY codigo`
	rows, err := r.q.Query(ctx, query, companyID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostCenter
	for rows.Next() {
		cc, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cost center: %w", err)
		}
		list = append(list, cc)
	}
	return list, rows.Err()
}

func (r *CostCenterRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM centros_costos WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete cost center: %w", err)
	}
	return mustAffect(tag)
}

// CountDependents cuenta empleados y movimientos (compras + gastos) imputados al centro.
func (r *CostCenterRepo) CountDependents(ctx context.Context, companyID, id string) (employees, movements int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM empleados WHERE empresa_id = $1 AND centro_costo_id = $2),
			(SELECT COUNT(*) FROM compras WHERE empresa_id = $1 AND centro_costo_id = $2)
			+ (SELECT COUNT(*) FROM gastos WHERE empresa_id = $1 AND centro_costo_id = $2)`
	if err := r.q.QueryRow(ctx, query, companyID, id).Scan(&employees, &movements); err != nil {
		return 0, 0, fmt.Errorf("count cost center dependents: %w", err)
	}
	return employees, movements, nil
}

func scanCostCenter(row pgxScanner) (*entity.CostCenter, error) {
	var cc entity.CostCenter
	if err := row.Scan(&cc.ID, &cc.CompanyID, &cc.Code, &cc.Name, &cc.Description, &cc.Active, &cc.CreatedAt, &cc.UpdatedAt); err != nil {
		return nil, err
	}
	return &cc, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación de BranchRepository sobre PostgreSQL.
// Las credenciales de punto de venta viven en la misma fila (db_*).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Acepta pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `id, empresa_id, razon_social_id, nombre, direccion, activo,
	db_host, db_port, db_name, db_user, db_password, db_sslmode, created_at, updated_at`

func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	query := `
		INSERT INTO sucursales (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.CompanyID, nullIfEmpty(b.LegalEntityID), b.Name, b.Address, b.Active,
		b.POS.Host, b.POS.Port, b.POS.DBName, b.POS.User, b.POS.Password, b.POS.SSLMode,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("nombre", b.Name)
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

func (r *BranchRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM sucursales WHERE empresa_id = $1 AND id = $2`
	b, err := scanBranch(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	query := `
		UPDATE sucursales
		SET razon_social_id = $3, nombre = $4, direccion = $5, activo = $6,
		    db_host = $7, db_port = $8, db_name = $9, db_user = $10, db_password = $11, db_sslmode = $12,
		    updated_at = $13
		WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		b.CompanyID, b.ID, nullIfEmpty(b.LegalEntityID), b.Name, b.Address, b.Active,
		b.POS.Host, b.POS.Port, b.POS.DBName, b.POS.User, b.POS.Password, b.POS.SSLMode,
		b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("nombre", b.Name)
		}
		return fmt.Errorf("update branch: %w", err)
	}
	return mustAffect(tag)
}

func (r *BranchRepo) ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]*entity.Branch, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM sucursales
		WHERE empresa_id = $1 AND (NOT $2 OR activo)
		ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, companyID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Delete elimina la sucursal. Las asignaciones a perfiles se borran en cascada;
// compras, gastos y participaciones quedan con sucursal NULL.
func (r *BranchRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sucursales WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete branch: %w", err)
	}
	return mustAffect(tag)
}

// CountDependents cuenta empleados asignados y el historial contable de la sucursal.
// ventas_resumen se borra en cascada con la sucursal, por eso bloquea el borrado.
func (r *BranchRepo) CountDependents(ctx context.Context, companyID, id string) (employees, records int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*)
			 FROM empleado_sucursales es
			 JOIN empleados e ON e.id = es.empleado_id
			 WHERE e.empresa_id = $1 AND es.sucursal_id = $2),
			(SELECT COUNT(*) FROM ventas_resumen WHERE empresa_id = $1 AND sucursal_id = $2)
			+ (SELECT COUNT(*) FROM compras WHERE empresa_id = $1 AND sucursal_id = $2)
			+ (SELECT COUNT(*) FROM gastos WHERE empresa_id = $1 AND sucursal_id = $2)`
	if err := r.q.QueryRow(ctx, query, companyID, id).Scan(&employees, &records); err != nil {
		return 0, 0, fmt.Errorf("count branch dependents: %w", err)
	}
	return employees, records, nil
}

func scanBranch(row pgxScanner) (*entity.Branch, error) {
	var b entity.Branch
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.LegalEntityID, &b.Name, &b.Address, &b.Active,
		&b.POS.Host, &b.POS.Port, &b.POS.DBName, &b.POS.User, &b.POS.Password, &b.POS.SSLMode,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

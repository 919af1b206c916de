package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.LegalEntityRepository = (*LegalEntityRepo)(nil)

// LegalEntityRepo implementación de LegalEntityRepository sobre PostgreSQL.
type LegalEntityRepo struct {
	q Querier
}

// NewLegalEntityRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLegalEntityRepository(q Querier) *LegalEntityRepo {
	return &LegalEntityRepo{q: q}
}

const legalEntityColumns = `id, empresa_id, rut, razon_social, giro, direccion, comuna, telefono, email, activo, created_at, updated_at`

func (r *LegalEntityRepo) Create(ctx context.Context, le *entity.LegalEntity) error {
	query := `
		INSERT INTO razones_sociales (` + legalEntityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		le.ID, le.CompanyID, le.RUT, le.BusinessName, le.LineOfBusiness, le.Address, le.Commune,
		le.Phone, le.Email, le.Active, le.CreatedAt, le.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("rut", le.RUT)
		}
		return fmt.Errorf("insert legal entity: %w", err)
	}
	return nil
}

func (r *LegalEntityRepo) GetByID(ctx context.Context, companyID, id string) (*entity.LegalEntity, error) {
	query := `SELECT ` + legalEntityColumns + ` FROM razones_sociales WHERE empresa_id = $1 AND id = $2`
	le, err := scanLegalEntity(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get legal entity: %w", err)
	}
	return le, nil
}

func (r *LegalEntityRepo) GetByRUT(ctx context.Context, companyID, rut string) (*entity.LegalEntity, error) {
	query := `SELECT ` + legalEntityColumns + ` FROM razones_sociales WHERE empresa_id = $1 AND rut = $2`
	le, err := scanLegalEntity(r.q.QueryRow(ctx, query, companyID, rut))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get legal entity by rut: %w", err)
	}
	return le, nil
}

func (r *LegalEntityRepo) Update(ctx context.Context, le *entity.LegalEntity) error {
	query := `
		UPDATE razones_sociales
		SET rut = $3, razon_social = $4, giro = $5, direccion = $6, comuna = $7,
		    telefono = $8, email = $9, activo = $10, updated_at = $11
		WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		le.CompanyID, le.ID, le.RUT, le.BusinessName, le.LineOfBusiness, le.Address, le.Commune,
		le.Phone, le.Email, le.Active, le.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("rut", le.RUT)
		}
		return fmt.Errorf("update legal entity: %w", err)
	}
	return mustAffect(tag)
}

// List busca por RUT o razón social; devuelve la página y el total.
func (r *LegalEntityRepo) List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.LegalEntity, int, error) {
	query := `
		SELECT ` + legalEntityColumns + `, COUNT(*) OVER()
		FROM razones_sociales
		WHERE empresa_id = $1
		  AND ($2 = '' OR rut ILIKE $3 OR razon_social ILIKE $3)
		ORDER BY razon_social
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, companyID, search, likePattern(search), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list legal entities: %w", err)
	}
	defer rows.Close()
	var (
		list  []*entity.LegalEntity
		total int
	)
	for rows.Next() {
		var le entity.LegalEntity
		if err := rows.Scan(
			&le.ID, &le.CompanyID, &le.RUT, &le.BusinessName, &le.LineOfBusiness, &le.Address, &le.Commune,
			&le.Phone, &le.Email, &le.Active, &le.CreatedAt, &le.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan legal entity: %w", err)
		}
		list = append(list, &le)
	}
	return list, total, rows.Err()
}

func (r *LegalEntityRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM razones_sociales WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete legal entity: %w", err)
	}
	return mustAffect(tag)
}

func (r *LegalEntityRepo) CountDependents(ctx context.Context, companyID, id string) (employees, branches int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM empleados WHERE empresa_id = $1 AND razon_social_id = $2),
			(SELECT COUNT(*) FROM sucursales WHERE empresa_id = $1 AND razon_social_id = $2)`
	if err := r.q.QueryRow(ctx, query, companyID, id).Scan(&employees, &branches); err != nil {
		return 0, 0, fmt.Errorf("count legal entity dependents: %w", err)
	}
	return employees, branches, nil
}

func scanLegalEntity(row pgxScanner) (*entity.LegalEntity, error) {
	var le entity.LegalEntity
	err := row.Scan(
		&le.ID, &le.CompanyID, &le.RUT, &le.BusinessName, &le.LineOfBusiness, &le.Address, &le.Commune,
		&le.Phone, &le.Email, &le.Active, &le.CreatedAt, &le.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &le, nil
}

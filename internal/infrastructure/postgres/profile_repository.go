package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación de ProfileRepository sobre PostgreSQL (perfiles, tablas puente y catálogo de módulos).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// profileSelect agrega módulos y sucursales como arreglos para resolver el perfil en una sola consulta.
const profileSelect = `
	SELECT p.id, p.empresa_id, p.nombre, p.descripcion, p.activo,
	       COALESCE(ARRAY(SELECT pm.modulo_codigo FROM perfil_modulos pm WHERE pm.perfil_id = p.id ORDER BY pm.modulo_codigo), '{}'),
	       COALESCE(ARRAY(SELECT ps.sucursal_id::text FROM perfil_sucursales ps WHERE ps.perfil_id = p.id ORDER BY ps.sucursal_id), '{}'),
	       p.created_at, p.updated_at
	FROM perfiles p`

func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO perfiles (id, empresa_id, nombre, descripcion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.CompanyID, p.Name, p.Description, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("nombre", p.Name)
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Profile, error) {
	p, err := scanProfile(r.q.QueryRow(ctx, profileSelect+` WHERE p.empresa_id = $1 AND p.id = $2`, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepo) GetByName(ctx context.Context, companyID, name string) (*entity.Profile, error) {
	p, err := scanProfile(r.q.QueryRow(ctx, profileSelect+` WHERE p.empresa_id = $1 AND lower(p.nombre) = lower($2)`, companyID, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by name: %w", err)
	}
	return p, nil
}

func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	query := `
		UPDATE perfiles SET nombre = $3, descripcion = $4, activo = $5, updated_at = $6
		WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query, p.CompanyID, p.ID, p.Name, p.Description, p.Active, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("nombre", p.Name)
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return mustAffect(tag)
}

func (r *ProfileRepo) ReplaceModules(ctx context.Context, profileID string, moduleCodes []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM perfil_modulos WHERE perfil_id = $1`, profileID); err != nil {
		return fmt.Errorf("clear profile modules: %w", err)
	}
	if len(moduleCodes) == 0 {
		return nil
	}
	query := `INSERT INTO perfil_modulos (perfil_id, modulo_codigo) SELECT $1, unnest($2::text[])`
	if _, err := r.q.Exec(ctx, query, profileID, moduleCodes); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Invalid("modulos", "uno de los módulos no existe")
		}
		return fmt.Errorf("insert profile modules: %w", err)
	}
	return nil
}

func (r *ProfileRepo) ReplaceBranches(ctx context.Context, profileID string, branchIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM perfil_sucursales WHERE perfil_id = $1`, profileID); err != nil {
		return fmt.Errorf("clear profile branches: %w", err)
	}
	if len(branchIDs) == 0 {
		return nil
	}
	query := `INSERT INTO perfil_sucursales (perfil_id, sucursal_id) SELECT $1, unnest($2::uuid[])`
	if _, err := r.q.Exec(ctx, query, profileID, branchIDs); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Invalid("sucursales", "una de las sucursales no existe")
		}
		return fmt.Errorf("insert profile branches: %w", err)
	}
	return nil
}

func (r *ProfileRepo) List(ctx context.Context, companyID string) ([]*entity.Profile, error) {
	rows, err := r.q.Query(ctx, profileSelect+` WHERE p.empresa_id = $1 ORDER BY p.nombre`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina el perfil; sus filas puente caen en cascada.
func (r *ProfileRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM perfiles WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return mustAffect(tag)
}

// ListModules catálogo de módulos (sembrado por migración).
func (r *ProfileRepo) ListModules(ctx context.Context) ([]*entity.Module, error) {
	rows, err := r.q.Query(ctx, `SELECT id, codigo, nombre, descripcion FROM modulos ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Module
	for rows.Next() {
		var m entity.Module
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Description); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func scanProfile(row pgxScanner) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Description, &p.Active, &p.ModuleCodes, &p.BranchIDs, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

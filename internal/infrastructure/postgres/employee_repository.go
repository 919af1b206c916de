package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// employeeSelect incluye el nombre del jefe resuelto por LEFT JOIN.
const employeeSelect = `
	SELECT e.id, e.empresa_id, e.rut, e.nombres, e.apellidos, e.email, e.telefono, e.cargo,
	       e.fecha_ingreso, e.fecha_nacimiento, e.sueldo_base,
	       e.razon_social_id, e.centro_costo_id, e.id_jefe,
	       e.activo, e.discapacidad, e.foto_url,
	       COALESCE(j.nombres || ' ' || j.apellidos, ''),
	       e.created_at, e.updated_at`

const employeeFrom = `
	FROM empleados e
	LEFT JOIN empleados j ON j.id = e.id_jefe`

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO empleados (
			id, empresa_id, rut, nombres, apellidos, email, telefono, cargo,
			fecha_ingreso, fecha_nacimiento, sueldo_base,
			razon_social_id, centro_costo_id, id_jefe,
			activo, discapacidad, foto_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.RUT, e.FirstNames, e.LastNames, e.Email, e.Phone, e.Position,
		e.HireDate, e.BirthDate, e.BaseSalary,
		nullIfEmpty(e.LegalEntityID), nullIfEmpty(e.CostCenterID), nullIfEmpty(e.ManagerID),
		e.Active, e.Disability, e.PhotoURL, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("rut", e.RUT)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene el empleado con sus sucursales.
func (r *EmployeeRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Employee, error) {
	return r.getOne(ctx, ` WHERE e.empresa_id = $1 AND e.id = $2`, companyID, id)
}

func (r *EmployeeRepo) GetByRUT(ctx context.Context, companyID, rut string) (*entity.Employee, error) {
	return r.getOne(ctx, ` WHERE e.empresa_id = $1 AND e.rut = $2`, companyID, rut)
}

func (r *EmployeeRepo) getOne(ctx context.Context, where string, args ...any) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, employeeSelect+employeeFrom+where, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	if err := r.loadBranches(ctx, []*entity.Employee{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE empleados
		SET rut = $3, nombres = $4, apellidos = $5, email = $6, telefono = $7, cargo = $8,
		    fecha_ingreso = $9, fecha_nacimiento = $10, sueldo_base = $11,
		    razon_social_id = $12, centro_costo_id = $13, id_jefe = $14,
		    activo = $15, discapacidad = $16, updated_at = $17
		WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		e.CompanyID, e.ID, e.RUT, e.FirstNames, e.LastNames, e.Email, e.Phone, e.Position,
		e.HireDate, e.BirthDate, e.BaseSalary,
		nullIfEmpty(e.LegalEntityID), nullIfEmpty(e.CostCenterID), nullIfEmpty(e.ManagerID),
		e.Active, e.Disability, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("rut", e.RUT)
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return mustAffect(tag)
}

// ReplaceBranches borra las asignaciones del empleado e inserta las nuevas.
func (r *EmployeeRepo) ReplaceBranches(ctx context.Context, employeeID string, branchIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM empleado_sucursales WHERE empleado_id = $1`, employeeID); err != nil {
		return fmt.Errorf("clear employee branches: %w", err)
	}
	if len(branchIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO empleado_sucursales (empleado_id, sucursal_id)
		SELECT $1, unnest($2::uuid[])`
	if _, err := r.q.Exec(ctx, query, employeeID, branchIDs); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Invalid("sucursales", "una de las sucursales no existe")
		}
		return fmt.Errorf("insert employee branches: %w", err)
	}
	return nil
}

// List aplica los filtros y devuelve la página (con sucursales) y el total.
func (r *EmployeeRepo) List(ctx context.Context, companyID string, f repository.EmployeeFilter) ([]*entity.Employee, int, error) {
	where := []string{"e.empresa_id = $1"}
	args := []any{companyID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := arg(likePattern(s))
		where = append(where, fmt.Sprintf("(e.rut ILIKE %[1]s OR e.nombres ILIKE %[1]s OR e.apellidos ILIKE %[1]s OR (e.nombres || ' ' || e.apellidos) ILIKE %[1]s)", p))
	}
	if f.Active != nil {
		where = append(where, "e.activo = "+arg(*f.Active))
	}
	if f.BranchID != "" {
		where = append(where, "EXISTS (SELECT 1 FROM empleado_sucursales es WHERE es.empleado_id = e.id AND es.sucursal_id = "+arg(f.BranchID)+")")
	}
	if f.CostCenterID != "" {
		where = append(where, "e.centro_costo_id = "+arg(f.CostCenterID))
	}
	query := employeeSelect + `, COUNT(*) OVER()` + employeeFrom +
		` WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY e.apellidos, e.nombres LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var (
		list  []*entity.Employee
		total int
	)
	for rows.Next() {
		e, err := scanEmployee(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadBranches(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListSubordinates empleados cuyo id_jefe es managerID.
func (r *EmployeeRepo) ListSubordinates(ctx context.Context, companyID, managerID string) ([]*entity.Employee, error) {
	query := employeeSelect + employeeFrom + ` WHERE e.empresa_id = $1 AND e.id_jefe = $2 ORDER BY e.apellidos, e.nombres`
	rows, err := r.q.Query(ctx, query, companyID, managerID)
	if err != nil {
		return nil, fmt.Errorf("list subordinates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadBranches(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *EmployeeRepo) SetActive(ctx context.Context, companyID, id string, active bool) error {
	return r.setColumn(ctx, "activo", companyID, id, active)
}

func (r *EmployeeRepo) SetDisability(ctx context.Context, companyID, id string, disability bool) error {
	return r.setColumn(ctx, "discapacidad", companyID, id, disability)
}

func (r *EmployeeRepo) SetPhoto(ctx context.Context, companyID, id, url string) error {
	return r.setColumn(ctx, "foto_url", companyID, id, url)
}

// setColumn actualiza una sola columna; column nunca viene del usuario.
func (r *EmployeeRepo) setColumn(ctx context.Context, column, companyID, id string, value any) error {
	query := `UPDATE empleados SET ` + column + ` = $3, updated_at = now() WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query, companyID, id, value)
	if err != nil {
		return fmt.Errorf("update employee %s: %w", column, err)
	}
	return mustAffect(tag)
}

// Delete elimina el empleado; sus sucursales caen en cascada y los subordinados quedan sin jefe.
func (r *EmployeeRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM empleados WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return mustAffect(tag)
}

// loadBranches completa Branches de cada empleado con una sola consulta.
func (r *EmployeeRepo) loadBranches(ctx context.Context, list []*entity.Employee) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]string, 0, len(list))
	byID := make(map[string]*entity.Employee, len(list))
	for _, e := range list {
		e.Branches = []entity.BranchRef{}
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}
	query := `
		SELECT es.empleado_id, s.id, s.nombre
		FROM empleado_sucursales es
		JOIN sucursales s ON s.id = es.sucursal_id
		WHERE es.empleado_id = ANY($1::uuid[])
		ORDER BY s.nombre`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("load employee branches: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var employeeID string
		var b entity.BranchRef
		if err := rows.Scan(&employeeID, &b.ID, &b.Name); err != nil {
			return fmt.Errorf("scan employee branch: %w", err)
		}
		if e := byID[employeeID]; e != nil {
			e.Branches = append(e.Branches, b)
		}
	}
	return rows.Err()
}

// scanEmployee lee las columnas de employeeSelect; extra recibe columnas adicionales (ej. COUNT(*) OVER()).
func scanEmployee(row pgxScanner, extra ...any) (*entity.Employee, error) {
	var e entity.Employee
	dest := []any{
		&e.ID, &e.CompanyID, &e.RUT, &e.FirstNames, &e.LastNames, &e.Email, &e.Phone, &e.Position,
		&e.HireDate, &e.BirthDate, &e.BaseSalary,
		&e.LegalEntityID, &e.CostCenterID, &e.ManagerID,
		&e.Active, &e.Disability, &e.PhotoURL, &e.ManagerName,
		&e.CreatedAt, &e.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &e, nil
}

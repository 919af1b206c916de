package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// EmployeeFilter filtros del listado de empleados.
type EmployeeFilter struct {
	Search       string // rut, nombres o apellidos (ILIKE)
	Active       *bool
	BranchID     string
	CostCenterID string
	Limit        int
	Offset       int
}

// EmployeeRepository define el puerto de persistencia para empleados.
// Create y Update escriben la fila y sus sucursales; deben ejecutarse dentro de una
// transacción (ver EmployeeTxRunner) para que ambas escrituras sean atómicas.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Employee, error)
	GetByRUT(ctx context.Context, companyID, rut string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	ReplaceBranches(ctx context.Context, employeeID string, branchIDs []string) error
	List(ctx context.Context, companyID string, f EmployeeFilter) ([]*entity.Employee, int, error)
	ListSubordinates(ctx context.Context, companyID, managerID string) ([]*entity.Employee, error)
	SetActive(ctx context.Context, companyID, id string, active bool) error
	SetDisability(ctx context.Context, companyID, id string, disability bool) error
	SetPhoto(ctx context.Context, companyID, id, url string) error
	Delete(ctx context.Context, companyID, id string) error
}

// EmployeeTxRunner ejecuta fn con un EmployeeRepository atado a una transacción.
type EmployeeTxRunner interface {
	RunEmployees(ctx context.Context, fn func(repo EmployeeRepository) error) error
}

package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]*entity.Branch, error)
	Delete(ctx context.Context, companyID, id string) error
	// CountDependents cuenta empleados asignados y registros contables (ventas_resumen,
	// compras y gastos) de la sucursal.
	CountDependents(ctx context.Context, companyID, id string) (employees, records int, err error)
}

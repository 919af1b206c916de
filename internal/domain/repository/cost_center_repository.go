package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// CostCenterRepository define el puerto de persistencia para centros de costo.
type CostCenterRepository interface {
	Create(ctx context.Context, cc *entity.CostCenter) error
	GetByID(ctx context.Context, companyID, id string) (*entity.CostCenter, error)
	GetByCode(ctx context.Context, companyID, code string) (*entity.CostCenter, error)
	Update(ctx context.Context, cc *entity.CostCenter) error
	List(ctx context.Context, companyID string, onlyActive bool) ([]*entity.CostCenter, error)
	Delete(ctx context.Context, companyID, id string) error
	// CountDependents cuenta empleados y movimientos (compras + gastos) imputados al centro.
	CountDependents(ctx context.Context, companyID, id string) (employees, movements int, err error)
}

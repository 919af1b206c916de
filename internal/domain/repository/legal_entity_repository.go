package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// LegalEntityRepository define el puerto de persistencia para razones sociales.
type LegalEntityRepository interface {
	Create(ctx context.Context, le *entity.LegalEntity) error
	GetByID(ctx context.Context, companyID, id string) (*entity.LegalEntity, error)
	GetByRUT(ctx context.Context, companyID, rut string) (*entity.LegalEntity, error)
	Update(ctx context.Context, le *entity.LegalEntity) error
	List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.LegalEntity, int, error)
	Delete(ctx context.Context, companyID, id string) error
	// CountDependents cuenta empleados y sucursales que referencian la razón social.
	CountDependents(ctx context.Context, companyID, id string) (employees, branches int, err error)
}

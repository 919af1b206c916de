package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para perfiles y el catálogo de módulos.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Profile, error)
	GetByName(ctx context.Context, companyID, name string) (*entity.Profile, error)
	Update(ctx context.Context, p *entity.Profile) error
	// ReplaceModules y ReplaceBranches reemplazan las filas de las tablas puente.
	ReplaceModules(ctx context.Context, profileID string, moduleCodes []string) error
	ReplaceBranches(ctx context.Context, profileID string, branchIDs []string) error
	List(ctx context.Context, companyID string) ([]*entity.Profile, error)
	Delete(ctx context.Context, companyID, id string) error
	ListModules(ctx context.Context) ([]*entity.Module, error)
}

// ProfileTxRunner ejecuta fn con un ProfileRepository atado a una transacción.
type ProfileTxRunner interface {
	RunProfiles(ctx context.Context, fn func(repo ProfileRepository) error) error
}

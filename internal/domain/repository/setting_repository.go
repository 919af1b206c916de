package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// SettingRepository define el puerto de persistencia para configuracion_sistema.
type SettingRepository interface {
	Get(ctx context.Context, companyID, key string) (*entity.Setting, error)
	List(ctx context.Context, companyID, prefix string) ([]*entity.Setting, error)
	Upsert(ctx context.Context, s *entity.Setting) error
	Delete(ctx context.Context, companyID, key string) error
}

package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// DiscountCodeRepository define el puerto de persistencia para códigos de descuento.
type DiscountCodeRepository interface {
	Create(ctx context.Context, d *entity.DiscountCode) error
	GetByID(ctx context.Context, companyID, id string) (*entity.DiscountCode, error)
	GetByCode(ctx context.Context, companyID, code string) (*entity.DiscountCode, error)
	Update(ctx context.Context, d *entity.DiscountCode) error
	List(ctx context.Context, companyID string, onlyActive bool, limit, offset int) ([]*entity.DiscountCode, int, error)
	SetActive(ctx context.Context, companyID, id string, active bool) error
	Delete(ctx context.Context, companyID, id string) error
	// Redeem incrementa usos_actuales solo si el código sigue siendo válido en now
	// (una única sentencia UPDATE condicionada). Devuelve false si ninguna fila cumplía.
	Redeem(ctx context.Context, companyID, code string, now time.Time) (bool, error)
}

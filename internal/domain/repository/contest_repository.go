package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ContestFilter filtros del listado de participaciones.
type ContestFilter struct {
	Status   string
	Search   string // rut, nombre o número de boleta
	Season   string
	BranchID string
	Limit    int
	Offset   int
}

// ContestRepository define el puerto de persistencia para participaciones del concurso.
type ContestRepository interface {
	Create(ctx context.Context, e *entity.ContestEntry) error
	GetByID(ctx context.Context, companyID, id string) (*entity.ContestEntry, error)
	ExistsReceipt(ctx context.Context, companyID, receiptNumber string) (bool, error)
	List(ctx context.Context, companyID string, f ContestFilter) ([]*entity.ContestEntry, int, error)
	SetStatus(ctx context.Context, companyID, id, status, note string) error
}

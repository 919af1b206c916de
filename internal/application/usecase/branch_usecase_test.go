package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestBranch_DeleteBloqueadoPorDependientes(t *testing.T) {
	ctx := context.Background()
	repo := newMemBranches(
		&entity.Branch{ID: "b1", CompanyID: "c1", Name: "Centro"},
		&entity.Branch{ID: "b2", CompanyID: "c1", Name: "Mall"},
		&entity.Branch{ID: "b3", CompanyID: "c1", Name: "Norte"},
	)
	repo.employees["b1"] = 2
	repo.records["b2"] = 30
	uc := NewBranchUseCase(repo, newMemLegalEntities(), nil)

	err := uc.Delete(ctx, "c1", "b1")
	assert.ErrorIs(t, err, domain.ErrInUse)
	assert.Contains(t, err.Error(), "empleados")

	err = uc.Delete(ctx, "c1", "b2")
	assert.ErrorIs(t, err, domain.ErrInUse, "el historial de ventas no se borra en cascada")
	assert.Contains(t, err.Error(), "registros contables")
	assert.Contains(t, repo.items, "b2")

	require.NoError(t, uc.Delete(ctx, "c1", "b3"))
	assert.NotContains(t, repo.items, "b3")

	assert.ErrorIs(t, uc.Delete(ctx, "c1", "b3"), domain.ErrNotFound)
}

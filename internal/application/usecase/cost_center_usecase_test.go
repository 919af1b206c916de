package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

func TestCostCenter_CodigoUnicoEnMayusculas(t *testing.T) {
	uc := NewCostCenterUseCase(newMemCostCenters())
	ctx := context.Background()
	out, err := uc.Create(ctx, "c1", dto.CostCenterRequest{Code: " adm ", Name: "Administración"})
	require.NoError(t, err)
	assert.Equal(t, "ADM", out.Code)

	_, err = uc.Create(ctx, "c1", dto.CostCenterRequest{Code: "ADM", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Actualizar conservando su propio código no es duplicado.
	_, err = uc.Update(ctx, "c1", out.ID, dto.CostCenterRequest{Code: "adm", Name: "Administración central"})
	assert.NoError(t, err)
}

func TestCostCenter_DeleteConMovimientos(t *testing.T) {
	repo := newMemCostCenters()
	uc := NewCostCenterUseCase(repo)
	ctx := context.Background()
	cc, err := uc.Create(ctx, "c1", dto.CostCenterRequest{Code: "VTA", Name: "Ventas"})
	require.NoError(t, err)

	repo.movements[cc.ID] = 2
	assert.ErrorIs(t, uc.Delete(ctx, "c1", cc.ID), domain.ErrInUse)
	assert.Contains(t, repo.items, cc.ID)

	repo.movements[cc.ID] = 0
	repo.employees[cc.ID] = 1
	assert.ErrorIs(t, uc.Delete(ctx, "c1", cc.ID), domain.ErrInUse)
}

func TestCostCenter_DeleteInexistente(t *testing.T) {
	uc := NewCostCenterUseCase(newMemCostCenters())
	assert.ErrorIs(t, uc.Delete(context.Background(), "c1", "nope"), domain.ErrNotFound)
}

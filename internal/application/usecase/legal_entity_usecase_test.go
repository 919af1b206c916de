package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

func TestLegalEntity_CreateNormalizaRUT(t *testing.T) {
	uc := NewLegalEntityUseCase(newMemLegalEntities())
	out, err := uc.Create(context.Background(), "c1", dto.LegalEntityRequest{RUT: "76.000.000-0", BusinessName: "Comercial Sur SpA"})
	require.NoError(t, err)
	assert.Equal(t, "76000000-0", out.RUT)
	assert.True(t, out.Active, "activo sin informar queda en true")
}

func TestLegalEntity_RUTDuplicado(t *testing.T) {
	repo := newMemLegalEntities()
	uc := NewLegalEntityUseCase(repo)
	ctx := context.Background()
	_, err := uc.Create(ctx, "c1", dto.LegalEntityRequest{RUT: "76000000-0", BusinessName: "A"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, "c1", dto.LegalEntityRequest{RUT: "76.000.000-0", BusinessName: "B"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Len(t, repo.items, 1, "no debe insertarse la segunda fila")

	// Otro tenant puede usar el mismo RUT.
	_, err = uc.Create(ctx, "c2", dto.LegalEntityRequest{RUT: "76000000-0", BusinessName: "C"})
	assert.NoError(t, err)
}

func TestLegalEntity_RUTInvalido(t *testing.T) {
	uc := NewLegalEntityUseCase(newMemLegalEntities())
	_, err := uc.Create(context.Background(), "c1", dto.LegalEntityRequest{RUT: "76000000-1", BusinessName: "A"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLegalEntity_DeleteConDependientes(t *testing.T) {
	repo := newMemLegalEntities()
	uc := NewLegalEntityUseCase(repo)
	ctx := context.Background()
	le, err := uc.Create(ctx, "c1", dto.LegalEntityRequest{RUT: "76000000-0", BusinessName: "A"})
	require.NoError(t, err)

	repo.employees[le.ID] = 3
	err = uc.Delete(ctx, "c1", le.ID)
	var inUse *domain.InUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 3, inUse.Count)
	assert.Contains(t, repo.items, le.ID, "la fila debe seguir existiendo")

	repo.employees[le.ID] = 0
	repo.branches[le.ID] = 1
	assert.True(t, errors.Is(uc.Delete(ctx, "c1", le.ID), domain.ErrInUse))

	repo.branches[le.ID] = 0
	require.NoError(t, uc.Delete(ctx, "c1", le.ID))
	assert.NotContains(t, repo.items, le.ID)
}

func TestLegalEntity_SetActiveIdempotente(t *testing.T) {
	repo := newMemLegalEntities()
	uc := NewLegalEntityUseCase(repo)
	ctx := context.Background()
	le, err := uc.Create(ctx, "c1", dto.LegalEntityRequest{RUT: "76000000-0", BusinessName: "A"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		out, err := uc.SetActive(ctx, "c1", le.ID, false)
		require.NoError(t, err)
		assert.False(t, out.Active)
		assert.False(t, repo.items[le.ID].Active)
	}
}

func TestLegalEntity_OtraEmpresaNoEncuentra(t *testing.T) {
	uc := NewLegalEntityUseCase(newMemLegalEntities())
	ctx := context.Background()
	le, err := uc.Create(ctx, "c1", dto.LegalEntityRequest{RUT: "76000000-0", BusinessName: "A"})
	require.NoError(t, err)

	_, err = uc.GetByID(ctx, "c2", le.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestProfile_CreateValidaModulosYSucursales(t *testing.T) {
	profiles := newMemProfiles()
	branches := newMemBranches(&entity.Branch{ID: "b1", CompanyID: "c1", Name: "Centro"})
	uc := NewProfileUseCase(profiles, profiles, &memUsers{}, branches)
	ctx := context.Background()

	out, err := uc.Create(ctx, "c1", dto.ProfileRequest{
		Name:      "Supervisor",
		Modules:   []string{entity.ModuleSales, entity.ModuleEmployees, entity.ModuleSales},
		BranchIDs: []string{"b1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.ModuleEmployees, entity.ModuleSales}, out.Modules)
	assert.Equal(t, []string{"b1"}, out.BranchIDs)

	_, err = uc.Create(ctx, "c1", dto.ProfileRequest{Name: "X", Modules: []string{"no_existe"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "c1", dto.ProfileRequest{Name: "Supervisor"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProfile_DeleteConUsuarios(t *testing.T) {
	p := &entity.Profile{ID: "p1", CompanyID: "c1", Name: "Cajero", Active: true}
	profiles := newMemProfiles(p)
	users := &memUsers{byProfile: map[string]int{"p1": 2}}
	uc := NewProfileUseCase(profiles, profiles, users, newMemBranches())

	assert.ErrorIs(t, uc.Delete(context.Background(), "c1", "p1"), domain.ErrInUse)
	assert.Contains(t, profiles.items, "p1")

	users.byProfile["p1"] = 0
	require.NoError(t, uc.Delete(context.Background(), "c1", "p1"))
	assert.NotContains(t, profiles.items, "p1")
}

func TestProfile_AdminNoSeBorra(t *testing.T) {
	profiles := newMemProfiles(&entity.Profile{ID: "adm", CompanyID: "c1", Name: entity.ProfileAdmin, Active: true})
	uc := NewProfileUseCase(profiles, profiles, &memUsers{}, newMemBranches())
	assert.ErrorIs(t, uc.Delete(context.Background(), "c1", "adm"), domain.ErrInvalidInput)
}

func TestModuleService_HasModule(t *testing.T) {
	profiles := newMemProfiles(
		&entity.Profile{ID: "adm", CompanyID: "c1", Name: entity.ProfileAdmin, Active: true},
		&entity.Profile{ID: "caj", CompanyID: "c1", Name: "Cajero", Active: true, ModuleCodes: []string{entity.ModuleDiscounts}},
		&entity.Profile{ID: "off", CompanyID: "c1", Name: "Inactivo", Active: false, ModuleCodes: []string{entity.ModuleDiscounts}},
	)
	svc := NewModuleService(profiles)
	ctx := context.Background()

	cases := []struct {
		profile, module string
		want            bool
	}{
		{"adm", entity.ModuleSales, true},
		{"caj", entity.ModuleDiscounts, true},
		{"caj", entity.ModuleSales, false},
		{"off", entity.ModuleDiscounts, false},
		{"nope", entity.ModuleDiscounts, false},
	}
	for _, tc := range cases {
		ok, err := svc.HasModule(ctx, "c1", tc.profile, tc.module)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "%s/%s", tc.profile, tc.module)
	}

	_, err := svc.HasModule(ctx, "", "caj", entity.ModuleSales)
	assert.Error(t, err)
}

func TestModuleService_AllowedBranches(t *testing.T) {
	profiles := newMemProfiles(
		&entity.Profile{ID: "adm", CompanyID: "c1", Name: entity.ProfileAdmin, Active: true, BranchIDs: []string{"b1"}},
		&entity.Profile{ID: "caj", CompanyID: "c1", Name: "Cajero", Active: true, BranchIDs: []string{"b1", "b2"}},
		&entity.Profile{ID: "libre", CompanyID: "c1", Name: "Supervisor", Active: true},
		&entity.Profile{ID: "off", CompanyID: "c1", Name: "Inactivo", Active: false},
	)
	svc := NewModuleService(profiles)
	ctx := context.Background()

	ids, err := svc.AllowedBranches(ctx, "c1", "adm")
	require.NoError(t, err)
	assert.Nil(t, ids, "admin ve todas las sucursales")

	ids, err = svc.AllowedBranches(ctx, "c1", "libre")
	require.NoError(t, err)
	assert.Nil(t, ids)

	ids, err = svc.AllowedBranches(ctx, "c1", "caj")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, ids)

	_, err = svc.AllowedBranches(ctx, "c1", "off")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.AllowedBranches(ctx, "c1", "nope")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

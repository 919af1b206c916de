package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ProfileUseCase administra perfiles y su asignación de módulos y sucursales.
type ProfileUseCase struct {
	repo     repository.ProfileRepository
	tx       repository.ProfileTxRunner
	users    repository.UserRepository
	branches repository.BranchRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository, tx repository.ProfileTxRunner, users repository.UserRepository, branches repository.BranchRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, tx: tx, users: users, branches: branches}
}

// Modules devuelve el catálogo de módulos.
func (uc *ProfileUseCase) Modules(ctx context.Context) ([]dto.ModuleResponse, error) {
	list, err := uc.repo.ListModules(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ModuleResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.ModuleResponse{Code: m.Code, Name: m.Name, Description: m.Description})
	}
	return items, nil
}

// Create crea el perfil y sus asignaciones en una transacción.
func (uc *ProfileUseCase) Create(ctx context.Context, companyID string, in dto.ProfileRequest) (*dto.ProfileResponse, error) {
	name := strings.TrimSpace(in.Name)
	if err := uc.ensureUniqueName(ctx, companyID, name, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Profile{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        name,
		Description: in.Description,
		Active:      boolOr(in.Active, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.assign(ctx, p, in); err != nil {
		return nil, err
	}
	err := uc.tx.RunProfiles(ctx, func(repo repository.ProfileRepository) error {
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
		if err := repo.ReplaceModules(ctx, p.ID, p.ModuleCodes); err != nil {
			return err
		}
		return repo.ReplaceBranches(ctx, p.ID, p.BranchIDs)
	})
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// Update reemplaza los datos del perfil y sus asignaciones en una transacción.
func (uc *ProfileUseCase) Update(ctx context.Context, companyID, id string, in dto.ProfileRequest) (*dto.ProfileResponse, error) {
	p, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if p.IsAdmin() && name != entity.ProfileAdmin {
		return nil, domain.Invalid("nombre", "el perfil admin no se puede renombrar")
	}
	if err := uc.ensureUniqueName(ctx, companyID, name, id); err != nil {
		return nil, err
	}
	p.Name = name
	p.Description = in.Description
	p.Active = boolOr(in.Active, p.Active)
	p.UpdatedAt = time.Now()
	if err := uc.assign(ctx, p, in); err != nil {
		return nil, err
	}
	err = uc.tx.RunProfiles(ctx, func(repo repository.ProfileRepository) error {
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		if err := repo.ReplaceModules(ctx, p.ID, p.ModuleCodes); err != nil {
			return err
		}
		return repo.ReplaceBranches(ctx, p.ID, p.BranchIDs)
	})
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// GetByID obtiene un perfil.
func (uc *ProfileUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProfileResponse, error) {
	p, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// List lista los perfiles de la empresa.
func (uc *ProfileUseCase) List(ctx context.Context, companyID string) ([]dto.ProfileResponse, error) {
	list, err := uc.repo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProfileResponse(p))
	}
	return items, nil
}

// Delete elimina el perfil si no tiene usuarios asignados.
func (uc *ProfileUseCase) Delete(ctx context.Context, companyID, id string) error {
	p, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if p.IsAdmin() {
		return domain.Invalid("id", "el perfil admin no se puede eliminar")
	}
	n, err := uc.users.CountByProfile(ctx, companyID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.InUse("el perfil", "usuarios", n)
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func (uc *ProfileUseCase) get(ctx context.Context, companyID, id string) (*entity.Profile, error) {
	p, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProfileUseCase) ensureUniqueName(ctx context.Context, companyID, name, selfID string) error {
	existing, err := uc.repo.GetByName(ctx, companyID, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Duplicate("nombre", name)
	}
	return nil
}

// assign valida los códigos contra el catálogo y las sucursales contra la empresa.
func (uc *ProfileUseCase) assign(ctx context.Context, p *entity.Profile, in dto.ProfileRequest) error {
	catalog, err := uc.repo.ListModules(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(catalog))
	for _, m := range catalog {
		known[m.Code] = true
	}
	codes := make([]string, 0, len(in.Modules))
	seen := map[string]bool{}
	for _, c := range in.Modules {
		c = strings.TrimSpace(c)
		if seen[c] {
			continue
		}
		if !known[c] {
			return domain.Invalid("modulos", fmt.Sprintf("módulo %q no existe", c))
		}
		seen[c] = true
		codes = append(codes, c)
	}
	sort.Strings(codes)

	branchIDs := make([]string, 0, len(in.BranchIDs))
	seen = map[string]bool{}
	for _, id := range in.BranchIDs {
		if seen[id] {
			continue
		}
		b, err := uc.branches.GetByID(ctx, p.CompanyID, id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.Invalid("sucursales", fmt.Sprintf("la sucursal %s no existe", id))
		}
		seen[id] = true
		branchIDs = append(branchIDs, id)
	}
	p.ModuleCodes = codes
	p.BranchIDs = branchIDs
	return nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	modules, branches := p.ModuleCodes, p.BranchIDs
	if modules == nil {
		modules = []string{}
	}
	if branches == nil {
		branches = []string{}
	}
	return &dto.ProfileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		Modules:     modules,
		BranchIDs:   branches,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

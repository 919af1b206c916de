package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ModuleService verifica qué módulos habilita el perfil de un usuario.
// Es el único punto de la aplicación que conoce la lógica de acceso por módulo.
type ModuleService struct {
	profiles repository.ProfileRepository
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(profiles repository.ProfileRepository) *ModuleService {
	return &ModuleService{profiles: profiles}
}

// HasModule informa si el perfil tiene el módulo habilitado. El perfil admin tiene todos.
// Devuelve false (sin error) si el perfil no existe o está inactivo.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *ModuleService) HasModule(ctx context.Context, companyID, profileID, module string) (bool, error) {
	if companyID == "" || module == "" {
		return false, fmt.Errorf("module: companyID y module son obligatorios")
	}
	if profileID == "" {
		return false, nil
	}
	p, err := s.profiles.GetByID(ctx, companyID, profileID)
	if err != nil {
		return false, err
	}
	if p == nil || !p.Active {
		return false, nil
	}
	return p.HasModule(module), nil
}

// AllowedBranches devuelve las sucursales visibles para el perfil; nil = todas (admin o sin restricción).
func (s *ModuleService) AllowedBranches(ctx context.Context, companyID, profileID string) ([]string, error) {
	p, err := s.profiles.GetByID(ctx, companyID, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, domain.ErrForbidden
	}
	if p.IsAdmin() || len(p.BranchIDs) == 0 {
		return nil, nil
	}
	return p.BranchIDs, nil
}

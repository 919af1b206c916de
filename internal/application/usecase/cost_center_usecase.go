package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// CostCenterUseCase casos de uso de centros de costo.
type CostCenterUseCase struct {
	repo repository.CostCenterRepository
}

// NewCostCenterUseCase construye el caso de uso.
func NewCostCenterUseCase(repo repository.CostCenterRepository) *CostCenterUseCase {
	return &CostCenterUseCase{repo: repo}
}

// Create crea un centro de costo con código único en la empresa.
func (uc *CostCenterUseCase) Create(ctx context.Context, companyID string, in dto.CostCenterRequest) (*dto.CostCenterResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if err := uc.ensureUniqueCode(ctx, companyID, code, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	cc := &entity.CostCenter{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Code:        code,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Active:      boolOr(in.Active, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, cc); err != nil {
		return nil, err
	}
	return toCostCenterResponse(cc), nil
}

// GetByID obtiene un centro de costo.
func (uc *CostCenterUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.CostCenterResponse, error) {
	cc, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toCostCenterResponse(cc), nil
}

// Update reemplaza los datos del centro de costo.
func (uc *CostCenterUseCase) Update(ctx context.Context, companyID, id string, in dto.CostCenterRequest) (*dto.CostCenterResponse, error) {
	cc, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if err := uc.ensureUniqueCode(ctx, companyID, code, id); err != nil {
		return nil, err
	}
	cc.Code = code
	cc.Name = strings.TrimSpace(in.Name)
	cc.Description = in.Description
	cc.Active = boolOr(in.Active, cc.Active)
	cc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, cc); err != nil {
		return nil, err
	}
	return toCostCenterResponse(cc), nil
}

// List lista los centros de costo de la empresa.
func (uc *CostCenterUseCase) List(ctx context.Context, companyID string, onlyActive bool) ([]dto.CostCenterResponse, error) {
	list, err := uc.repo.List(ctx, companyID, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CostCenterResponse, 0, len(list))
	for _, cc := range list {
		items = append(items, *toCostCenterResponse(cc))
	}
	return items, nil
}

// Delete elimina el centro de costo si no tiene empleados ni movimientos imputados.
func (uc *CostCenterUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return err
	}
	employees, movements, err := uc.repo.CountDependents(ctx, companyID, id)
	if err != nil {
		return err
	}
	if employees > 0 {
		return domain.InUse("el centro de costo", "empleados", employees)
	}
	if movements > 0 {
		return domain.InUse("el centro de costo", "movimientos", movements)
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func (uc *CostCenterUseCase) get(ctx context.Context, companyID, id string) (*entity.CostCenter, error) {
	cc, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if cc == nil {
		return nil, domain.ErrNotFound
	}
	return cc, nil
}

func (uc *CostCenterUseCase) ensureUniqueCode(ctx context.Context, companyID, code, selfID string) error {
	existing, err := uc.repo.GetByCode(ctx, companyID, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Duplicate("codigo", code)
	}
	return nil
}

func toCostCenterResponse(cc *entity.CostCenter) *dto.CostCenterResponse {
	return &dto.CostCenterResponse{
		ID:          cc.ID,
		Code:        cc.Code,
		Name:        cc.Name,
		Description: cc.Description,
		Active:      cc.Active,
		CreatedAt:   cc.CreatedAt,
		UpdatedAt:   cc.UpdatedAt,
	}
}

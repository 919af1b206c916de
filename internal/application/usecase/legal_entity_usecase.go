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

// LegalEntityUseCase casos de uso de razones sociales.
type LegalEntityUseCase struct {
	repo repository.LegalEntityRepository
}

// NewLegalEntityUseCase construye el caso de uso.
func NewLegalEntityUseCase(repo repository.LegalEntityRepository) *LegalEntityUseCase {
	return &LegalEntityUseCase{repo: repo}
}

// Create crea una razón social. El RUT se valida y debe ser único en la empresa.
func (uc *LegalEntityUseCase) Create(ctx context.Context, companyID string, in dto.LegalEntityRequest) (*dto.LegalEntityResponse, error) {
	r, err := normalizeRUT("rut", in.RUT)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueRUT(ctx, companyID, r, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	le := &entity.LegalEntity{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		RUT:       r,
		Active:    boolOr(in.Active, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyLegalEntity(le, in)
	if err := uc.repo.Create(ctx, le); err != nil {
		return nil, err
	}
	return toLegalEntityResponse(le), nil
}

// GetByID obtiene una razón social.
func (uc *LegalEntityUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.LegalEntityResponse, error) {
	le, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toLegalEntityResponse(le), nil
}

// Update reemplaza los datos de la razón social.
func (uc *LegalEntityUseCase) Update(ctx context.Context, companyID, id string, in dto.LegalEntityRequest) (*dto.LegalEntityResponse, error) {
	le, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	r, err := normalizeRUT("rut", in.RUT)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueRUT(ctx, companyID, r, id); err != nil {
		return nil, err
	}
	le.RUT = r
	le.Active = boolOr(in.Active, le.Active)
	applyLegalEntity(le, in)
	le.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, le); err != nil {
		return nil, err
	}
	return toLegalEntityResponse(le), nil
}

// List lista razones sociales con búsqueda por RUT o nombre.
func (uc *LegalEntityUseCase) List(ctx context.Context, companyID, search string, page dto.PageRequest) (*dto.ListResponse[dto.LegalEntityResponse], error) {
	page.Normalize()
	list, total, err := uc.repo.List(ctx, companyID, strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LegalEntityResponse, 0, len(list))
	for _, le := range list {
		items = append(items, *toLegalEntityResponse(le))
	}
	return &dto.ListResponse[dto.LegalEntityResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// SetActive fija el flag activo. Repetir el mismo valor no tiene efecto adicional.
func (uc *LegalEntityUseCase) SetActive(ctx context.Context, companyID, id string, active bool) (*dto.LegalEntityResponse, error) {
	le, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	le.Active = active
	le.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, le); err != nil {
		return nil, err
	}
	return toLegalEntityResponse(le), nil
}

// Delete elimina la razón social si ningún empleado ni sucursal la referencia.
func (uc *LegalEntityUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return err
	}
	employees, branches, err := uc.repo.CountDependents(ctx, companyID, id)
	if err != nil {
		return err
	}
	if employees > 0 {
		return domain.InUse("la razón social", "empleados", employees)
	}
	if branches > 0 {
		return domain.InUse("la razón social", "sucursales", branches)
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func (uc *LegalEntityUseCase) get(ctx context.Context, companyID, id string) (*entity.LegalEntity, error) {
	le, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if le == nil {
		return nil, domain.ErrNotFound
	}
	return le, nil
}

func (uc *LegalEntityUseCase) ensureUniqueRUT(ctx context.Context, companyID, r, selfID string) error {
	existing, err := uc.repo.GetByRUT(ctx, companyID, r)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Duplicate("rut", r)
	}
	return nil
}

func applyLegalEntity(le *entity.LegalEntity, in dto.LegalEntityRequest) {
	le.BusinessName = strings.TrimSpace(in.BusinessName)
	le.LineOfBusiness = in.LineOfBusiness
	le.Address = in.Address
	le.Commune = in.Commune
	le.Phone = in.Phone
	le.Email = in.Email
}

func toLegalEntityResponse(le *entity.LegalEntity) *dto.LegalEntityResponse {
	return &dto.LegalEntityResponse{
		ID:             le.ID,
		RUT:            le.RUT,
		BusinessName:   le.BusinessName,
		LineOfBusiness: le.LineOfBusiness,
		Address:        le.Address,
		Commune:        le.Commune,
		Phone:          le.Phone,
		Email:          le.Email,
		Active:         le.Active,
		CreatedAt:      le.CreatedAt,
		UpdatedAt:      le.UpdatedAt,
	}
}

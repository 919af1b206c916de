package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// DiscountUseCase administra códigos de descuento y su validación/canje público.
type DiscountUseCase struct {
	repo repository.DiscountCodeRepository
	now  func() time.Time
}

// NewDiscountUseCase construye el caso de uso.
func NewDiscountUseCase(repo repository.DiscountCodeRepository) *DiscountUseCase {
	return &DiscountUseCase{repo: repo, now: time.Now}
}

// Create crea un código. El código se guarda en mayúsculas y es único en la empresa.
func (uc *DiscountUseCase) Create(ctx context.Context, companyID string, in dto.DiscountCodeRequest) (*dto.DiscountCodeResponse, error) {
	now := uc.now()
	d := &entity.DiscountCode{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Active:    boolOr(in.Active, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.apply(ctx, d, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDiscountResponse(d), nil
}

// Update reemplaza los datos del código. Los usos ya consumidos se conservan.
func (uc *DiscountUseCase) Update(ctx context.Context, companyID, id string, in dto.DiscountCodeRequest) (*dto.DiscountCodeResponse, error) {
	d, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	d.Active = boolOr(in.Active, d.Active)
	if err := uc.apply(ctx, d, in); err != nil {
		return nil, err
	}
	d.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDiscountResponse(d), nil
}

// GetByID obtiene un código.
func (uc *DiscountUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.DiscountCodeResponse, error) {
	d, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toDiscountResponse(d), nil
}

// List lista los códigos de la empresa.
func (uc *DiscountUseCase) List(ctx context.Context, companyID string, onlyActive bool, page dto.PageRequest) (*dto.ListResponse[dto.DiscountCodeResponse], error) {
	page.Normalize()
	list, total, err := uc.repo.List(ctx, companyID, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DiscountCodeResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDiscountResponse(d))
	}
	return &dto.ListResponse[dto.DiscountCodeResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// SetActive fija el flag activo (idempotente).
func (uc *DiscountUseCase) SetActive(ctx context.Context, companyID, id string, active bool) (*dto.DiscountCodeResponse, error) {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return nil, err
	}
	if err := uc.repo.SetActive(ctx, companyID, id, active); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, companyID, id)
}

// Delete elimina un código.
func (uc *DiscountUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, companyID, id)
}

// Validate informa si el código es usable ahora y, si no, el motivo. No consume usos.
func (uc *DiscountUseCase) Validate(ctx context.Context, companyID, code string) (*dto.DiscountValidationResponse, error) {
	d, err := uc.repo.GetByCode(ctx, companyID, normalizeCode(code))
	if err != nil {
		return nil, err
	}
	return validationResponse(d, d.Evaluate(uc.now())), nil
}

// Redeem consume un uso del código con un UPDATE condicionado. Si el código ya no
// es válido devuelve la respuesta con el motivo junto a domain.ErrCodeRejected.
func (uc *DiscountUseCase) Redeem(ctx context.Context, companyID, code string) (*dto.DiscountValidationResponse, error) {
	code = normalizeCode(code)
	now := uc.now()
	ok, err := uc.repo.Redeem(ctx, companyID, code, now)
	if err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if ok && d != nil {
		return validationResponse(d, ""), nil
	}
	reason := d.Evaluate(now)
	if reason == "" {
		reason = entity.DiscountExhausted
	}
	return validationResponse(d, reason), domain.ErrCodeRejected
}

func (uc *DiscountUseCase) get(ctx context.Context, companyID, id string) (*entity.DiscountCode, error) {
	d, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (uc *DiscountUseCase) apply(ctx context.Context, d *entity.DiscountCode, in dto.DiscountCodeRequest) error {
	code := normalizeCode(in.Code)
	existing, err := uc.repo.GetByCode(ctx, d.CompanyID, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != d.ID {
		return domain.Duplicate("codigo", code)
	}
	if !in.Value.IsPositive() {
		return domain.Invalid("valor", "debe ser mayor que cero")
	}
	if in.Type == entity.DiscountPercent && in.Value.GreaterThan(hundred) {
		return domain.Invalid("valor", "un porcentaje no puede superar 100")
	}
	start, err := parseOptionalDate("fecha_inicio", in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate("fecha_fin", in.EndDate)
	if err != nil {
		return err
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.Invalid("fecha_fin", "no puede ser anterior a fecha_inicio")
	}
	d.Code = code
	d.Description = in.Description
	d.Type = in.Type
	d.Value = in.Value
	d.StartDate = start
	d.EndDate = end
	d.MaxUses = in.MaxUses
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validationResponse(d *entity.DiscountCode, reason string) *dto.DiscountValidationResponse {
	if reason != "" {
		return &dto.DiscountValidationResponse{Valid: false, Reason: reason}
	}
	return &dto.DiscountValidationResponse{
		Valid: true,
		Code: &dto.DiscountPublicDetail{
			Code:        d.Code,
			Description: d.Description,
			Type:        d.Type,
			Value:       d.Value,
			EndDate:     formatDate(d.EndDate),
		},
	}
}

func toDiscountResponse(d *entity.DiscountCode) *dto.DiscountCodeResponse {
	return &dto.DiscountCodeResponse{
		ID:            d.ID,
		Code:          d.Code,
		Description:   d.Description,
		Type:          d.Type,
		Value:         d.Value,
		StartDate:     formatDate(d.StartDate),
		EndDate:       formatDate(d.EndDate),
		MaxUses:       d.MaxUses,
		UsedCount:     d.UsedCount,
		RemainingUses: d.RemainingUses(),
		Active:        d.Active,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

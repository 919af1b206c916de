package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

const (
	// receiptMaxSide lado mayor de la imagen de boleta almacenada.
	receiptMaxSide = 1600
	// receiptOCRTimeout tope de la llamada al proveedor de visión.
	receiptOCRTimeout = 20 * time.Second
)

// ContestUseCase participación pública en el concurso y revisión interna.
type ContestUseCase struct {
	repo     repository.ContestRepository
	branches repository.BranchRepository
	settings *SettingUseCase
	storage  ports.FileStorage
	images   ports.ImageProcessor
	reader   ports.ReceiptReader // nil = OCR no configurado
	now      func() time.Time
}

// NewContestUseCase construye el caso de uso. reader puede ser nil.
func NewContestUseCase(
	repo repository.ContestRepository,
	branches repository.BranchRepository,
	settings *SettingUseCase,
	storage ports.FileStorage,
	images ports.ImageProcessor,
	reader ports.ReceiptReader,
) *ContestUseCase {
	return &ContestUseCase{
		repo:     repo,
		branches: branches,
		settings: settings,
		storage:  storage,
		images:   images,
		reader:   reader,
		now:      time.Now,
	}
}

// Participate registra una boleta. Requiere temporada abierta, RUT válido y número de
// boleta no usado en la empresa. La imagen se reduce y se guarda antes del INSERT.
func (uc *ContestUseCase) Participate(ctx context.Context, companyID string, in dto.ContestEntryRequest, image []byte) (*dto.ContestEntryResponse, error) {
	season, err := uc.settings.Season(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !season.Open {
		return nil, domain.ErrSeasonClosed
	}
	r, err := normalizeRUT("rut", in.RUT)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil || !amount.IsPositive() {
		return nil, domain.Invalid("monto", "debe ser un número mayor que cero")
	}
	receiptDate, err := parseOptionalDate("fecha_boleta", in.ReceiptDate)
	if err != nil {
		return nil, err
	}
	var branchID *string
	if id := strings.TrimSpace(in.BranchID); id != "" {
		b, err := uc.branches.GetByID(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.Invalid("sucursal_id", "la sucursal no existe")
		}
		branchID = &b.ID
	}
	receipt := strings.ToUpper(strings.TrimSpace(in.ReceiptNumber))
	exists, err := uc.repo.ExistsReceipt(ctx, companyID, receipt)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate("numero_boleta", receipt)
	}
	if len(image) == 0 {
		return nil, domain.Invalid("imagen", "la foto de la boleta es obligatoria")
	}
	img, err := uc.images.Fit(image, receiptMaxSide)
	if err != nil {
		return nil, domain.Invalid("imagen", err.Error())
	}

	now := uc.now()
	e := &entity.ContestEntry{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		BranchID:      branchID,
		RUT:           r,
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:         strings.TrimSpace(in.Phone),
		ReceiptNumber: receipt,
		Amount:        amount,
		ReceiptDate:   receiptDate,
		Status:        entity.EntryPending,
		Season:        season.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	key := fmt.Sprintf("concurso/%s/%s.jpg", companyID, e.ID)
	if e.ImageURL, err = uc.storage.Save(ctx, key, img, "image/jpeg"); err != nil {
		return nil, fmt.Errorf("guardar boleta: %w", err)
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, multierr.Append(err, uc.storage.Delete(ctx, key))
	}
	return toContestResponse(e), nil
}

// ReadReceipt sugiere los datos de la boleta a partir de la foto.
func (uc *ContestUseCase) ReadReceipt(ctx context.Context, image []byte, mimeType string) (*dto.ReceiptReading, error) {
	if uc.reader == nil {
		return nil, fmt.Errorf("%w: lectura de boletas no configurada", domain.ErrUnavailable)
	}
	if len(image) == 0 {
		return nil, domain.Invalid("imagen", "la foto de la boleta es obligatoria")
	}
	ctx, cancel := context.WithTimeout(ctx, receiptOCRTimeout)
	defer cancel()

	out, err := uc.reader.ReadReceipt(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: lectura de boleta: %v", domain.ErrUnavailable, err)
	}
	return out, nil
}

// List lista participaciones con filtros.
func (uc *ContestUseCase) List(ctx context.Context, companyID string, in dto.ContestListRequest) (*dto.ListResponse[dto.ContestEntryResponse], error) {
	in.PageRequest.Normalize()
	list, total, err := uc.repo.List(ctx, companyID, repository.ContestFilter{
		Status:   in.Status,
		Search:   strings.TrimSpace(in.Search),
		Season:   in.Season,
		BranchID: in.BranchID,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContestEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toContestResponse(e))
	}
	return &dto.ListResponse[dto.ContestEntryResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// GetByID obtiene una participación.
func (uc *ContestUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ContestEntryResponse, error) {
	e, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toContestResponse(e), nil
}

// Review marca la participación como válida, inválida o la devuelve a pendiente.
func (uc *ContestUseCase) Review(ctx context.Context, companyID, id string, in dto.ContestReviewRequest) (*dto.ContestEntryResponse, error) {
	if _, err := uc.GetByID(ctx, companyID, id); err != nil {
		return nil, err
	}
	if in.Status == entity.EntryInvalid && strings.TrimSpace(in.Note) == "" {
		return nil, domain.Invalid("nota", "indique el motivo del rechazo")
	}
	if err := uc.repo.SetStatus(ctx, companyID, id, in.Status, strings.TrimSpace(in.Note)); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, companyID, id)
}

func toContestResponse(e *entity.ContestEntry) *dto.ContestEntryResponse {
	return &dto.ContestEntryResponse{
		ID:            e.ID,
		RUT:           e.RUT,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		ReceiptNumber: e.ReceiptNumber,
		Amount:        e.Amount,
		ReceiptDate:   formatDate(e.ReceiptDate),
		BranchID:      e.BranchID,
		ImageURL:      e.ImageURL,
		Status:        e.Status,
		ReviewNote:    e.ReviewNote,
		Season:        e.Season,
		CreatedAt:     e.CreatedAt,
	}
}

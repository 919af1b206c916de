package analytics

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

// LedgerUseCase registro de compras y gastos que alimentan el estado de resultados.
type LedgerUseCase struct {
	repo        repository.LedgerRepository
	branches    repository.BranchRepository
	costCenters repository.CostCenterRepository
	now         func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.LedgerRepository, branches repository.BranchRepository, costCenters repository.CostCenterRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo, branches: branches, costCenters: costCenters, now: time.Now}
}

// CreatePurchase registra una compra.
func (uc *LedgerUseCase) CreatePurchase(ctx context.Context, companyID string, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	date, err := time.ParseInLocation(dateLayout, in.Date, time.Local)
	if err != nil {
		return nil, domain.Invalid("fecha", "fecha inválida, se espera YYYY-MM-DD")
	}
	if !in.Net.IsPositive() {
		return nil, domain.Invalid("neto", "debe ser mayor que cero")
	}
	branchID, costCenterID, err := uc.refs(ctx, companyID, in.BranchID, in.CostCenterID)
	if err != nil {
		return nil, err
	}
	p := &entity.Purchase{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		BranchID:     branchID,
		CostCenterID: costCenterID,
		Date:         date,
		Supplier:     strings.TrimSpace(in.Supplier),
		DocumentNo:   strings.TrimSpace(in.DocumentNo),
		Net:          in.Net,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}
	return toPurchaseResponse(p), nil
}

// ListPurchases lista compras del período.
func (uc *LedgerUseCase) ListPurchases(ctx context.Context, companyID string, in dto.LedgerListRequest) (*dto.ListResponse[dto.PurchaseResponse], error) {
	in.PageRequest.Normalize()
	f, err := uc.filter(in)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.ListPurchases(ctx, companyID, f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.ListResponse[dto.PurchaseResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// DeletePurchase elimina una compra.
func (uc *LedgerUseCase) DeletePurchase(ctx context.Context, companyID, id string) error {
	return uc.repo.DeletePurchase(ctx, companyID, id)
}

// CreateExpense registra un gasto.
func (uc *LedgerUseCase) CreateExpense(ctx context.Context, companyID string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := time.ParseInLocation(dateLayout, in.Date, time.Local)
	if err != nil {
		return nil, domain.Invalid("fecha", "fecha inválida, se espera YYYY-MM-DD")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("monto", "debe ser mayor que cero")
	}
	branchID, costCenterID, err := uc.refs(ctx, companyID, in.BranchID, in.CostCenterID)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		BranchID:     branchID,
		CostCenterID: costCenterID,
		Date:         date,
		Category:     strings.TrimSpace(in.Category),
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// ListExpenses lista gastos del período.
func (uc *LedgerUseCase) ListExpenses(ctx context.Context, companyID string, in dto.LedgerListRequest) (*dto.ListResponse[dto.ExpenseResponse], error) {
	in.PageRequest.Normalize()
	f, err := uc.filter(in)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.ListExpenses(ctx, companyID, f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ListResponse[dto.ExpenseResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// DeleteExpense elimina un gasto.
func (uc *LedgerUseCase) DeleteExpense(ctx context.Context, companyID, id string) error {
	return uc.repo.DeleteExpense(ctx, companyID, id)
}

func (uc *LedgerUseCase) filter(in dto.LedgerListRequest) (repository.PeriodFilter, error) {
	p, err := ParsePeriod(in.PeriodRequest, uc.now())
	if err != nil {
		return repository.PeriodFilter{}, err
	}
	return repository.PeriodFilter{From: p.From, To: p.To, BranchID: in.BranchID, CostCenterID: in.CostCenterID}, nil
}

func (uc *LedgerUseCase) refs(ctx context.Context, companyID string, branchID, costCenterID *string) (*string, *string, error) {
	if branchID != nil && *branchID != "" {
		b, err := uc.branches.GetByID(ctx, companyID, *branchID)
		if err != nil {
			return nil, nil, err
		}
		if b == nil {
			return nil, nil, domain.Invalid("sucursal_id", "la sucursal no existe")
		}
	} else {
		branchID = nil
	}
	if costCenterID != nil && *costCenterID != "" {
		cc, err := uc.costCenters.GetByID(ctx, companyID, *costCenterID)
		if err != nil {
			return nil, nil, err
		}
		if cc == nil {
			return nil, nil, domain.Invalid("centro_costo_id", "el centro de costo no existe")
		}
	} else {
		costCenterID = nil
	}
	return branchID, costCenterID, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		Date:         p.Date.Format(dateLayout),
		BranchID:     p.BranchID,
		CostCenterID: p.CostCenterID,
		Supplier:     p.Supplier,
		DocumentNo:   p.DocumentNo,
		Net:          p.Net,
		CreatedAt:    p.CreatedAt,
	}
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:           e.ID,
		Date:         e.Date.Format(dateLayout),
		BranchID:     e.BranchID,
		CostCenterID: e.CostCenterID,
		Category:     e.Category,
		Description:  e.Description,
		Amount:       e.Amount,
		CreatedAt:    e.CreatedAt,
	}
}

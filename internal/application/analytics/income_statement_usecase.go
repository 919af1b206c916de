package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// IncomeStatementUseCase genera el estado de resultados desde ventas_resumen, compras y gastos.
//
// Fuente de datos: IncomeStatementRepository (consultas read-only).
type IncomeStatementUseCase struct {
	repo      repository.IncomeStatementRepository
	companies repository.CompanyRepository
	pdf       ports.IncomeStatementPDF
	exporter  ports.ReportExporter
	now       func() time.Time
}

// NewIncomeStatementUseCase construye el caso de uso.
func NewIncomeStatementUseCase(
	repo repository.IncomeStatementRepository,
	companies repository.CompanyRepository,
	pdf ports.IncomeStatementPDF,
	exporter ports.ReportExporter,
) *IncomeStatementUseCase {
	return &IncomeStatementUseCase{repo: repo, companies: companies, pdf: pdf, exporter: exporter, now: time.Now}
}

// Build calcula el estado de resultados del período.
//
// Cuatro consultas en paralelo:
//  1. SalesByMonth        → ingresos
//  2. PurchasesByMonth    → costo de ventas
//  3. ExpensesByMonth     → gastos por mes
//  4. ExpensesByCategory  → gastos por categoría
func (uc *IncomeStatementUseCase) Build(ctx context.Context, companyID string, in dto.IncomeStatementRequest) (*dto.IncomeStatementDTO, error) {
	period, err := ParsePeriod(in.PeriodRequest, uc.now())
	if err != nil {
		return nil, err
	}
	f := repository.PeriodFilter{From: period.From, To: period.To, BranchID: in.BranchID, CostCenterID: in.CostCenterID}

	type monthsResult struct {
		rows []repository.MonthAmount
		err  error
	}
	type categoriesResult struct {
		rows []repository.CategoryAmount
		err  error
	}
	salesCh := make(chan monthsResult, 1)
	purchasesCh := make(chan monthsResult, 1)
	expensesCh := make(chan monthsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		rows, err := uc.repo.SalesByMonth(ctx, companyID, f)
		salesCh <- monthsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.PurchasesByMonth(ctx, companyID, f)
		purchasesCh <- monthsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ExpensesByMonth(ctx, companyID, f)
		expensesCh <- monthsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ExpensesByCategory(ctx, companyID, f)
		categoriesCh <- categoriesResult{rows, err}
	}()

	sales, purchases, expenses, categories := <-salesCh, <-purchasesCh, <-expensesCh, <-categoriesCh
	if sales.err != nil {
		return nil, fmt.Errorf("estado de resultados: ventas: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("estado de resultados: compras: %w", purchases.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("estado de resultados: gastos: %w", expenses.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("estado de resultados: categorías: %w", categories.err)
	}

	st := &dto.IncomeStatementDTO{
		Period:       period.DTO(),
		BranchID:     in.BranchID,
		CostCenterID: in.CostCenterID,
		Revenue:      sum(sales.rows),
		CostOfSales:  sum(purchases.rows),
		GeneratedAt:  uc.now(),
	}
	st.GrossMargin = st.Revenue.Sub(st.CostOfSales)
	st.GrossMarginPct = pct(st.GrossMargin, st.Revenue)

	st.TotalExpenses = decimal.Zero
	for _, c := range categories.rows {
		st.TotalExpenses = st.TotalExpenses.Add(c.Amount)
	}
	st.Expenses = make([]dto.ExpenseLineDTO, 0, len(categories.rows))
	for _, c := range categories.rows {
		st.Expenses = append(st.Expenses, dto.ExpenseLineDTO{
			Category: c.Category,
			Amount:   c.Amount,
			SharePct: pct(c.Amount, st.TotalExpenses),
		})
	}
	st.OperatingResult = st.GrossMargin.Sub(st.TotalExpenses)
	st.OperatingPct = pct(st.OperatingResult, st.Revenue)
	st.Months = months(period, sales.rows, purchases.rows, expenses.rows)
	return st, nil
}

// PDF genera el estado de resultados en PDF.
func (uc *IncomeStatementUseCase) PDF(ctx context.Context, companyID string, in dto.IncomeStatementRequest) ([]byte, error) {
	st, name, err := uc.buildNamed(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.IncomeStatementPDF(name, st)
}

// XLSX genera el estado de resultados en Excel.
func (uc *IncomeStatementUseCase) XLSX(ctx context.Context, companyID string, in dto.IncomeStatementRequest) ([]byte, error) {
	st, name, err := uc.buildNamed(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	return uc.exporter.IncomeStatementXLSX(name, st)
}

func (uc *IncomeStatementUseCase) buildNamed(ctx context.Context, companyID string, in dto.IncomeStatementRequest) (*dto.IncomeStatementDTO, string, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	st, err := uc.Build(ctx, companyID, in)
	if err != nil {
		return nil, "", err
	}
	return st, company.Name, nil
}

func sum(rows []repository.MonthAmount) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}

// months arma una columna por cada mes del período, incluidos los meses sin movimientos.
func months(p Period, sales, purchases, expenses []repository.MonthAmount) []dto.IncomeStatementMonthDTO {
	index := func(rows []repository.MonthAmount) map[string]decimal.Decimal {
		m := make(map[string]decimal.Decimal, len(rows))
		for _, r := range rows {
			m[r.Month] = m[r.Month].Add(r.Amount)
		}
		return m
	}
	s, c, e := index(sales), index(purchases), index(expenses)

	var out []dto.IncomeStatementMonthDTO
	last := time.Date(p.To.Year(), p.To.Month(), 1, 0, 0, 0, 0, time.Local)
	for m := time.Date(p.From.Year(), p.From.Month(), 1, 0, 0, 0, 0, time.Local); !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		row := dto.IncomeStatementMonthDTO{
			Month:       key,
			Label:       monthLabel(m),
			Revenue:     s[key],
			CostOfSales: c[key],
			Expenses:    e[key],
		}
		row.GrossMargin = row.Revenue.Sub(row.CostOfSales)
		row.OperatingRes = row.GrossMargin.Sub(row.Expenses)
		out = append(out, row)
	}
	return out
}

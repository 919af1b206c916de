package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

type fakeIncomeRepo struct {
	sales, purchases, expenses []repository.MonthAmount
	categories                 []repository.CategoryAmount
	purchasesErr               error
	lastFilter                 repository.PeriodFilter
}

func (f *fakeIncomeRepo) SalesByMonth(_ context.Context, _ string, pf repository.PeriodFilter) ([]repository.MonthAmount, error) {
	f.lastFilter = pf
	return f.sales, nil
}

func (f *fakeIncomeRepo) PurchasesByMonth(context.Context, string, repository.PeriodFilter) ([]repository.MonthAmount, error) {
	return f.purchases, f.purchasesErr
}

func (f *fakeIncomeRepo) ExpensesByMonth(context.Context, string, repository.PeriodFilter) ([]repository.MonthAmount, error) {
	return f.expenses, nil
}

func (f *fakeIncomeRepo) ExpensesByCategory(context.Context, string, repository.PeriodFilter) ([]repository.CategoryAmount, error) {
	return f.categories, nil
}

type fakeCompanies struct {
	repository.CompanyRepository
}

func (fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id != "c1" {
		return nil, nil
	}
	return &entity.Company{ID: "c1", Name: "Tiendas Demo SpA"}, nil
}

type capturePDF struct{ company string }

func (c *capturePDF) IncomeStatementPDF(company string, _ *dto.IncomeStatementDTO) ([]byte, error) {
	c.company = company
	return []byte("%PDF"), nil
}

func sampleIncomeRepo() *fakeIncomeRepo {
	return &fakeIncomeRepo{
		sales:     []repository.MonthAmount{{Month: "2026-01", Amount: d(1000)}, {Month: "2026-03", Amount: d(500)}},
		purchases: []repository.MonthAmount{{Month: "2026-01", Amount: d(400)}},
		expenses:  []repository.MonthAmount{{Month: "2026-02", Amount: d(100)}},
		categories: []repository.CategoryAmount{
			{Category: "arriendo", Amount: d(75)},
			{Category: "luz", Amount: d(25)},
		},
	}
}

func newIncomeUC(repo *fakeIncomeRepo, pdf *capturePDF) *IncomeStatementUseCase {
	uc := NewIncomeStatementUseCase(repo, fakeCompanies{}, pdf, nil)
	uc.now = fixed("2026-04-02")
	return uc
}

func TestIncomeStatement_Build(t *testing.T) {
	repo := sampleIncomeRepo()
	uc := newIncomeUC(repo, &capturePDF{})

	st, err := uc.Build(context.Background(), "c1", dto.IncomeStatementRequest{
		PeriodRequest: dto.PeriodRequest{From: "2026-01-01", To: "2026-03-31"},
		BranchID:      "b1",
	})
	require.NoError(t, err)

	assert.Equal(t, "b1", repo.lastFilter.BranchID)
	assert.Equal(t, "1500", st.Revenue.String())
	assert.Equal(t, "400", st.CostOfSales.String())
	assert.Equal(t, "1100", st.GrossMargin.String())
	assert.Equal(t, "73.33", st.GrossMarginPct.String())
	assert.Equal(t, "100", st.TotalExpenses.String())
	assert.Equal(t, "1000", st.OperatingResult.String())
	assert.Equal(t, "66.67", st.OperatingPct.String())

	require.Len(t, st.Expenses, 2)
	assert.Equal(t, "75", st.Expenses[0].SharePct.String())

	require.Len(t, st.Months, 3, "un mes sin ventas igual aparece")
	assert.Equal(t, "2026-02", st.Months[1].Month)
	assert.Equal(t, "Febrero 2026", st.Months[1].Label)
	assert.Equal(t, "0", st.Months[1].Revenue.String())
	assert.Equal(t, "-100", st.Months[1].OperatingRes.String())
	assert.Equal(t, "600", st.Months[0].GrossMargin.String())
}

func TestIncomeStatement_SinMovimientos(t *testing.T) {
	uc := newIncomeUC(&fakeIncomeRepo{}, &capturePDF{})
	st, err := uc.Build(context.Background(), "c1", dto.IncomeStatementRequest{})
	require.NoError(t, err)
	assert.True(t, st.Revenue.IsZero())
	assert.True(t, st.GrossMarginPct.IsZero())
	assert.Empty(t, st.Expenses)
	require.Len(t, st.Months, 1)
	assert.Equal(t, "2026-04", st.Months[0].Month)
}

func TestIncomeStatement_PropagaErrores(t *testing.T) {
	repo := sampleIncomeRepo()
	repo.purchasesErr = errors.New("timeout")
	uc := newIncomeUC(repo, &capturePDF{})

	_, err := uc.Build(context.Background(), "c1", dto.IncomeStatementRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compras")
}

func TestIncomeStatement_PDFUsaNombreDeEmpresa(t *testing.T) {
	pdf := &capturePDF{}
	uc := newIncomeUC(sampleIncomeRepo(), pdf)

	out, err := uc.PDF(context.Background(), "c1", dto.IncomeStatementRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	assert.Equal(t, "Tiendas Demo SpA", pdf.company)

	_, err = uc.PDF(context.Background(), "otra", dto.IncomeStatementRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

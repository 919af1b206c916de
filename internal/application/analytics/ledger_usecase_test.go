package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

func newLedgerUC() (*LedgerUseCase, *fakeLedger) {
	ledger := &fakeLedger{}
	uc := NewLedgerUseCase(ledger, &fakeBranches{list: nil}, &fakeCostCenters{ids: map[string]bool{"cc1": true}})
	uc.now = fixed("2026-03-15")
	return uc, ledger
}

func ptr(s string) *string { return &s }

func TestLedger_CreatePurchase(t *testing.T) {
	uc, ledger := newLedgerUC()
	out, err := uc.CreatePurchase(context.Background(), "c1", dto.PurchaseRequest{
		Date:         "2026-03-02",
		BranchID:     ptr(""),
		CostCenterID: ptr("cc1"),
		Supplier:     "  Textiles Sur ",
		Net:          d(150000),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", out.Date)
	assert.Nil(t, out.BranchID, "sucursal vacía se guarda como NULL")
	assert.Equal(t, "cc1", *out.CostCenterID)
	assert.Equal(t, "Textiles Sur", out.Supplier)
	require.Len(t, ledger.purchases, 1)
	assert.Equal(t, "c1", ledger.purchases[0].CompanyID)
}

func TestLedger_Rechazos(t *testing.T) {
	uc, ledger := newLedgerUC()
	ctx := context.Background()

	_, err := uc.CreatePurchase(ctx, "c1", dto.PurchaseRequest{Date: "02/03/2026", Supplier: "x", Net: d(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreatePurchase(ctx, "c1", dto.PurchaseRequest{Date: "2026-03-02", Supplier: "x", Net: d(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateExpense(ctx, "c1", dto.ExpenseRequest{Date: "2026-03-02", Category: "luz", Amount: d(10), BranchID: ptr("b9")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sucursal_id", verr.Field)

	_, err = uc.CreateExpense(ctx, "c1", dto.ExpenseRequest{Date: "2026-03-02", Category: "luz", Amount: d(10), CostCenterID: ptr("cc9")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "centro_costo_id", verr.Field)

	assert.Empty(t, ledger.purchases)
	assert.Empty(t, ledger.expenses)
}

func TestLedger_ListExpensesNormalizaPaginaYPeriodo(t *testing.T) {
	uc, ledger := newLedgerUC()
	_, err := uc.CreateExpense(context.Background(), "c1", dto.ExpenseRequest{Date: "2026-03-02", Category: "luz", Amount: d(10)})
	require.NoError(t, err)

	out, err := uc.ListExpenses(context.Background(), "c1", dto.LedgerListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Page.Limit)
	assert.Equal(t, 1, out.Page.Total)
	assert.Equal(t, "2026-03-01", ledger.lastF.From.Format(dateLayout))
	assert.Equal(t, "2026-03-15", ledger.lastF.To.Format(dateLayout))
}

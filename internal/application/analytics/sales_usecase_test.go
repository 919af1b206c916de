package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newSalesUC(conn *fakeConnector, ledger *fakeLedger, branches ...*entity.Branch) *SalesUseCase {
	uc := NewSalesUseCase(&fakeBranches{list: branches}, conn, ledger, SalesConfig{QueryTimeout: time.Second, MaxConcurrency: 2})
	uc.now = fixed("2026-03-15")
	return uc
}

func centroReader() *fakeReader {
	return &fakeReader{
		summary: repository.SalesSummary{Net: d(1000), Tax: d(190), Gross: d(1190), Tickets: 2, Discounts: d(50)},
		days: []repository.DaySales{
			{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), Net: d(600), Tickets: 1},
			{Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), Net: d(400), Tickets: 1},
		},
		products: []repository.ProductSales{
			{Code: "P1", Name: "Polera", Quantity: d(3), Net: d(250)},
			{Code: "P2", Name: "Jeans", Quantity: d(1), Net: d(750)},
		},
		payments: []repository.PaymentSales{
			{Method: "debito", Amount: d(300), Tickets: 1},
			{Method: "efectivo", Amount: d(100), Tickets: 1},
		},
	}
}

func TestBranchReport_ArmaReporteYCierraConexion(t *testing.T) {
	conn := newFakeConnector()
	conn.add("h1", centroReader())
	uc := newSalesUC(conn, &fakeLedger{}, branch("b1", "h1"))

	rep, err := uc.BranchReport(context.Background(), Scope{CompanyID: "c1"}, "b1", dto.BranchSalesRequest{Top: 1})
	require.NoError(t, err)

	assert.Equal(t, "Sucursal b1", rep.BranchName)
	assert.Equal(t, dto.PeriodDTO{From: "2026-03-01", To: "2026-03-15"}, rep.Period)
	assert.True(t, d(1190).Equal(rep.Totals.Gross))
	assert.True(t, d(595).Equal(rep.Totals.AverageTicket))
	require.Len(t, rep.ByDay, 2)
	assert.Equal(t, "2026-03-01", rep.ByDay[0].Date)
	require.Len(t, rep.Top, 1)
	assert.Equal(t, "25", rep.Top[0].SharePct.String())
	require.Len(t, rep.ByPayment, 2)
	assert.Equal(t, "75", rep.ByPayment[0].SharePct.String())

	assert.EqualValues(t, 1, conn.opened.Load())
	assert.EqualValues(t, 1, conn.closed.Load())
}

func TestBranchReport_ErrorDeConsultaTambienCierra(t *testing.T) {
	conn := newFakeConnector()
	r := centroReader()
	r.topErr = errPOS
	conn.add("h1", r)
	uc := newSalesUC(conn, &fakeLedger{}, branch("b1", "h1"))

	_, err := uc.BranchReport(context.Background(), Scope{CompanyID: "c1"}, "b1", dto.BranchSalesRequest{})
	require.ErrorIs(t, err, errPOS)
	assert.EqualValues(t, 1, conn.closed.Load())
}

func TestBranchReport_Rechazos(t *testing.T) {
	conn := newFakeConnector()
	sinPOS := branch("b2", "")
	uc := newSalesUC(conn, &fakeLedger{}, branch("b1", "h1"), sinPOS)
	ctx := context.Background()

	_, err := uc.BranchReport(ctx, Scope{CompanyID: "c1", Allowed: []string{"b2"}}, "b1", dto.BranchSalesRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.BranchReport(ctx, Scope{CompanyID: "c1"}, "nope", dto.BranchSalesRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.BranchReport(ctx, Scope{CompanyID: "c1"}, "b2", dto.BranchSalesRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	conn.openErr["h1"] = errPOS
	_, err = uc.BranchReport(ctx, Scope{CompanyID: "c1"}, "b1", dto.BranchSalesRequest{})
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	assert.EqualValues(t, 0, conn.opened.Load())
}

func TestConsolidated_ErrorPorSucursalNoAfectaAlResto(t *testing.T) {
	conn := newFakeConnector()
	conn.add("h1", centroReader())
	conn.add("h3", &fakeReader{summaryErr: errPOS})
	conn.openErr["h2"] = errPOS
	uc := newSalesUC(conn, &fakeLedger{}, branch("b1", "h1"), branch("b2", "h2"), branch("b3", "h3"))

	rep, err := uc.Consolidated(context.Background(), Scope{CompanyID: "c1"}, dto.ConsolidatedSalesRequest{})
	require.NoError(t, err)
	require.Len(t, rep.Branches, 3)

	assert.Empty(t, rep.Branches[0].Error)
	require.NotNil(t, rep.Branches[0].Totals)
	assert.NotEmpty(t, rep.Branches[1].Error)
	assert.Nil(t, rep.Branches[1].Totals)
	assert.NotEmpty(t, rep.Branches[2].Error)

	assert.True(t, d(1000).Equal(rep.Totals.Net))
	assert.Equal(t, 2, rep.Totals.Tickets)
	assert.Equal(t, conn.opened.Load(), conn.closed.Load())
}

func TestConsolidated_FiltraPorSucursalesDelPerfil(t *testing.T) {
	conn := newFakeConnector()
	conn.add("h1", centroReader())
	conn.add("h2", centroReader())
	uc := newSalesUC(conn, &fakeLedger{}, branch("b1", "h1"), branch("b2", "h2"))
	ctx := context.Background()

	rep, err := uc.Consolidated(ctx, Scope{CompanyID: "c1", Allowed: []string{"b2"}}, dto.ConsolidatedSalesRequest{})
	require.NoError(t, err)
	require.Len(t, rep.Branches, 1)
	assert.Equal(t, "b2", rep.Branches[0].BranchID)

	_, err = uc.Consolidated(ctx, Scope{CompanyID: "c1"}, dto.ConsolidatedSalesRequest{Branches: "b1, nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Consolidated(ctx, Scope{CompanyID: "c1", Allowed: []string{"b2"}}, dto.ConsolidatedSalesRequest{Branches: "b1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSync_CopiaVentaDiaria(t *testing.T) {
	conn := newFakeConnector()
	conn.add("h1", centroReader())
	ledger := &fakeLedger{}
	uc := newSalesUC(conn, ledger, branch("b1", "h1"))

	res, err := uc.Sync(context.Background(), Scope{CompanyID: "c1"}, "b1", dto.PeriodRequest{From: "2026-03-01", To: "2026-03-02"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Days)
	require.Len(t, ledger.daily, 2)
	assert.Equal(t, "c1", ledger.daily[0].CompanyID)
	assert.Equal(t, "b1", ledger.daily[0].BranchID)
	assert.EqualValues(t, 1, conn.closed.Load())
}

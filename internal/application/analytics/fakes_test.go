package analytics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var errPOS = errors.New("pos: conexión rechazada")

// ── Sucursales ───────────────────────────────────────────────────────────────

type fakeBranches struct {
	repository.BranchRepository
	list []*entity.Branch
}

func (f *fakeBranches) GetByID(_ context.Context, companyID, id string) (*entity.Branch, error) {
	for _, b := range f.list {
		if b.ID == id && b.CompanyID == companyID {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranches) ListByCompany(_ context.Context, companyID string, onlyActive bool) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range f.list {
		if b.CompanyID == companyID && (!onlyActive || b.Active) {
			out = append(out, b)
		}
	}
	return out, nil
}

func branch(id, host string) *entity.Branch {
	return &entity.Branch{
		ID:        id,
		CompanyID: "c1",
		Name:      "Sucursal " + id,
		Active:    true,
		POS:       entity.POSConnection{Host: host, Port: 5432, DBName: "pos", User: "lector", Password: "x"},
	}
}

// ── Conector y reader de punto de venta ──────────────────────────────────────

type fakeReader struct {
	summary    repository.SalesSummary
	days       []repository.DaySales
	products   []repository.ProductSales
	payments   []repository.PaymentSales
	summaryErr error
	topErr     error
	closed     *atomic.Int32
}

func (r *fakeReader) Ping(context.Context) error { return nil }

func (r *fakeReader) Summary(context.Context, time.Time, time.Time) (repository.SalesSummary, error) {
	return r.summary, r.summaryErr
}

func (r *fakeReader) ByDay(context.Context, time.Time, time.Time) ([]repository.DaySales, error) {
	return r.days, nil
}

func (r *fakeReader) TopProducts(_ context.Context, _, _ time.Time, limit int) ([]repository.ProductSales, error) {
	if r.topErr != nil {
		return nil, r.topErr
	}
	if len(r.products) > limit {
		return r.products[:limit], nil
	}
	return r.products, nil
}

func (r *fakeReader) ByPaymentMethod(context.Context, time.Time, time.Time) ([]repository.PaymentSales, error) {
	return r.payments, nil
}

func (r *fakeReader) Close() error {
	r.closed.Add(1)
	return nil
}

// fakeConnector entrega un reader por host; openErr simula sucursales caídas.
type fakeConnector struct {
	mu      sync.Mutex
	readers map[string]*fakeReader
	openErr map[string]error
	opened  atomic.Int32
	closed  atomic.Int32
}

func newFakeConnector() *fakeConnector {
	return &fakeConnector{readers: map[string]*fakeReader{}, openErr: map[string]error{}}
}

func (c *fakeConnector) add(host string, r *fakeReader) {
	r.closed = &c.closed
	c.readers[host] = r
}

func (c *fakeConnector) Open(_ context.Context, conn entity.POSConnection) (repository.BranchSalesReader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.openErr[conn.Host]; err != nil {
		return nil, err
	}
	r, ok := c.readers[conn.Host]
	if !ok {
		return nil, errPOS
	}
	c.opened.Add(1)
	return r, nil
}

// ── Libro de compras y gastos ────────────────────────────────────────────────

type fakeLedger struct {
	purchases []*entity.Purchase
	expenses  []*entity.Expense
	daily     []entity.DailySales
	lastF     repository.PeriodFilter
}

func (l *fakeLedger) CreatePurchase(_ context.Context, p *entity.Purchase) error {
	l.purchases = append(l.purchases, p)
	return nil
}

func (l *fakeLedger) ListPurchases(_ context.Context, _ string, f repository.PeriodFilter, _, _ int) ([]*entity.Purchase, int, error) {
	l.lastF = f
	return l.purchases, len(l.purchases), nil
}

func (l *fakeLedger) DeletePurchase(context.Context, string, string) error { return nil }

func (l *fakeLedger) CreateExpense(_ context.Context, e *entity.Expense) error {
	l.expenses = append(l.expenses, e)
	return nil
}

func (l *fakeLedger) ListExpenses(_ context.Context, _ string, f repository.PeriodFilter, _, _ int) ([]*entity.Expense, int, error) {
	l.lastF = f
	return l.expenses, len(l.expenses), nil
}

func (l *fakeLedger) DeleteExpense(context.Context, string, string) error { return nil }

func (l *fakeLedger) UpsertDailySales(_ context.Context, rows []entity.DailySales) error {
	l.daily = append(l.daily, rows...)
	return nil
}

type fakeCostCenters struct {
	repository.CostCenterRepository
	ids map[string]bool
}

func (f *fakeCostCenters) GetByID(_ context.Context, _, id string) (*entity.CostCenter, error) {
	if !f.ids[id] {
		return nil, nil
	}
	return &entity.CostCenter{ID: id, CompanyID: "c1"}, nil
}

func fixed(s string) func() time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.Add(10 * time.Hour) }
}

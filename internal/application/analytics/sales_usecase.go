package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

const (
	defaultTopProducts = 10
	maxTopProducts     = 50
)

var hundred = decimal.NewFromInt(100)

// SalesConfig límites de las consultas a bases de sucursal.
type SalesConfig struct {
	QueryTimeout   time.Duration // por sucursal, incluye abrir y cerrar la conexión
	MaxConcurrency int           // sucursales consultadas en paralelo en el consolidado
}

// Scope empresa del usuario y sucursales que su perfil puede ver (nil = todas).
type Scope struct {
	CompanyID string
	Allowed   []string
}

func (s Scope) allows(branchID string) bool {
	if s.Allowed == nil {
		return true
	}
	for _, id := range s.Allowed {
		if id == branchID {
			return true
		}
	}
	return false
}

// SalesUseCase reportes de venta leídos directamente desde la base de punto de venta
// de cada sucursal. Cada reporte abre su propia conexión y la cierra antes de responder.
type SalesUseCase struct {
	branches  repository.BranchRepository
	connector repository.BranchConnector
	ledger    repository.LedgerRepository
	cfg       SalesConfig
	now       func() time.Time
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(branches repository.BranchRepository, connector repository.BranchConnector, ledger repository.LedgerRepository, cfg SalesConfig) *SalesUseCase {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 30 * time.Second
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
	return &SalesUseCase{branches: branches, connector: connector, ledger: ledger, cfg: cfg, now: time.Now}
}

// BranchReport totales, ventas por día, ranking de productos y medios de pago de una sucursal.
func (uc *SalesUseCase) BranchReport(ctx context.Context, scope Scope, branchID string, in dto.BranchSalesRequest) (*dto.BranchSalesReport, error) {
	period, err := ParsePeriod(in.PeriodRequest, uc.now())
	if err != nil {
		return nil, err
	}
	top := in.Top
	if top <= 0 {
		top = defaultTopProducts
	}
	if top > maxTopProducts {
		top = maxTopProducts
	}
	branch, err := uc.branch(ctx, scope, branchID)
	if err != nil {
		return nil, err
	}

	report := &dto.BranchSalesReport{BranchID: branch.ID, BranchName: branch.Name, Period: period.DTO()}
	err = uc.withBranch(ctx, branch, func(ctx context.Context, r repository.BranchSalesReader) error {
		var (
			summary  repository.SalesSummary
			days     []repository.DaySales
			products []repository.ProductSales
			payments []repository.PaymentSales
		)
		// ── Cuatro consultas en paralelo sobre el mismo pool ──────────────────
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			summary, err = r.Summary(gctx, period.From, period.End())
			return wrap("resumen", err)
		})
		g.Go(func() (err error) {
			days, err = r.ByDay(gctx, period.From, period.End())
			return wrap("ventas por día", err)
		})
		g.Go(func() (err error) {
			products, err = r.TopProducts(gctx, period.From, period.End(), top)
			return wrap("top productos", err)
		})
		g.Go(func() (err error) {
			payments, err = r.ByPaymentMethod(gctx, period.From, period.End())
			return wrap("medios de pago", err)
		})
		if err := g.Wait(); err != nil {
			return err
		}
		report.Totals = totals(summary)
		report.ByDay = dayRows(days)
		report.Top = productRows(products, summary.Net)
		report.ByPayment = paymentRows(payments)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Consolidated consulta varias sucursales en paralelo (con tope de concurrencia).
// El error de una sucursal se informa en su fila y no afecta a las demás.
func (uc *SalesUseCase) Consolidated(ctx context.Context, scope Scope, in dto.ConsolidatedSalesRequest) (*dto.ConsolidatedSalesReport, error) {
	period, err := ParsePeriod(in.PeriodRequest, uc.now())
	if err != nil {
		return nil, err
	}
	branches, err := uc.selectBranches(ctx, scope, in.Branches)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.BranchTotalsDTO, len(branches))
	sums := make([]repository.SalesSummary, len(branches))
	var g errgroup.Group
	g.SetLimit(uc.cfg.MaxConcurrency)
	for i, b := range branches {
		i, b := i, b
		rows[i] = dto.BranchTotalsDTO{BranchID: b.ID, BranchName: b.Name}
		g.Go(func() error {
			err := uc.withBranch(ctx, b, func(ctx context.Context, r repository.BranchSalesReader) error {
				s, err := r.Summary(ctx, period.From, period.End())
				if err != nil {
					return err
				}
				t := totals(s)
				sums[i], rows[i].Totals = s, &t
				return nil
			})
			if err != nil {
				rows[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	var all repository.SalesSummary
	for i := range rows {
		if rows[i].Error != "" {
			continue
		}
		all.Net = all.Net.Add(sums[i].Net)
		all.Tax = all.Tax.Add(sums[i].Tax)
		all.Gross = all.Gross.Add(sums[i].Gross)
		all.Discounts = all.Discounts.Add(sums[i].Discounts)
		all.Tickets += sums[i].Tickets
	}
	return &dto.ConsolidatedSalesReport{Period: period.DTO(), Totals: totals(all), Branches: rows}, nil
}

// Sync copia la venta diaria de la sucursal a ventas_resumen (insumo del estado de resultados).
func (uc *SalesUseCase) Sync(ctx context.Context, scope Scope, branchID string, in dto.PeriodRequest) (*dto.SyncResult, error) {
	period, err := ParsePeriod(in, uc.now())
	if err != nil {
		return nil, err
	}
	branch, err := uc.branch(ctx, scope, branchID)
	if err != nil {
		return nil, err
	}
	var days []repository.DaySales
	err = uc.withBranch(ctx, branch, func(ctx context.Context, r repository.BranchSalesReader) (err error) {
		days, err = r.ByDay(ctx, period.From, period.End())
		return err
	})
	if err != nil {
		return nil, err
	}
	rows := make([]entity.DailySales, 0, len(days))
	for _, d := range days {
		rows = append(rows, entity.DailySales{
			CompanyID: scope.CompanyID,
			BranchID:  branch.ID,
			Date:      d.Date,
			Net:       d.Net,
			Tickets:   d.Tickets,
		})
	}
	if err := uc.ledger.UpsertDailySales(ctx, rows); err != nil {
		return nil, err
	}
	return &dto.SyncResult{BranchID: branch.ID, Period: period.DTO(), Days: len(rows)}, nil
}

// withBranch abre la base de la sucursal, ejecuta fn y cierra la conexión en todos los caminos.
func (uc *SalesUseCase) withBranch(ctx context.Context, b *entity.Branch, fn func(context.Context, repository.BranchSalesReader) error) (err error) {
	if !b.POS.Configured() {
		return domain.Invalid("sucursal", fmt.Sprintf("la sucursal %s no tiene credenciales de punto de venta", b.Name))
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.QueryTimeout)
	defer cancel()

	reader, err := uc.connector.Open(ctx, b.POS)
	if err != nil {
		return fmt.Errorf("%w: sucursal %s: %v", domain.ErrUnavailable, b.Name, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(reader))
	return fn(ctx, reader)
}

func (uc *SalesUseCase) branch(ctx context.Context, scope Scope, id string) (*entity.Branch, error) {
	if !scope.allows(id) {
		return nil, domain.ErrForbidden
	}
	b, err := uc.branches.GetByID(ctx, scope.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// selectBranches resuelve la lista "id1,id2"; vacía = todas las sucursales activas visibles.
func (uc *SalesUseCase) selectBranches(ctx context.Context, scope Scope, raw string) ([]*entity.Branch, error) {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		list, err := uc.branches.ListByCompany(ctx, scope.CompanyID, true)
		if err != nil {
			return nil, err
		}
		out := make([]*entity.Branch, 0, len(list))
		for _, b := range list {
			if scope.allows(b.ID) {
				out = append(out, b)
			}
		}
		return out, nil
	}
	out := make([]*entity.Branch, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		b, err := uc.branch(ctx, scope, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Invalid("sucursales", fmt.Sprintf("la sucursal %s no existe", id))
			}
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("ventas: %s: %w", what, err)
}

func totals(s repository.SalesSummary) dto.SalesTotalsDTO {
	t := dto.SalesTotalsDTO{
		Net:           s.Net.Round(0),
		Tax:           s.Tax.Round(0),
		Gross:         s.Gross.Round(0),
		Discounts:     s.Discounts.Round(0),
		Tickets:       s.Tickets,
		AverageTicket: decimal.Zero,
	}
	if s.Tickets > 0 {
		t.AverageTicket = s.Gross.Div(decimal.NewFromInt(int64(s.Tickets))).Round(0)
	}
	return t
}

func dayRows(days []repository.DaySales) []dto.DaySalesDTO {
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	out := make([]dto.DaySalesDTO, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DaySalesDTO{Date: d.Date.Format(dateLayout), Net: d.Net.Round(0), Tickets: d.Tickets})
	}
	return out
}

func productRows(products []repository.ProductSales, total decimal.Decimal) []dto.ProductSalesDTO {
	out := make([]dto.ProductSalesDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductSalesDTO{
			Code:     p.Code,
			Name:     p.Name,
			Quantity: p.Quantity,
			Net:      p.Net.Round(0),
			SharePct: pct(p.Net, total),
		})
	}
	return out
}

func paymentRows(payments []repository.PaymentSales) []dto.PaymentSalesDTO {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	out := make([]dto.PaymentSalesDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentSalesDTO{
			Method:   p.Method,
			Amount:   p.Amount.Round(0),
			Tickets:  p.Tickets,
			SharePct: pct(p.Amount, total),
		})
	}
	return out
}

// pct devuelve part/total*100 con 2 decimales; 0 si total es cero.
func pct(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Round(2)
}

// Package pdf genera el estado de resultados en PDF.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa             │  Período + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Costo / Margen / Gastos / Resultado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GASTOS POR CATEGORÍA                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EVOLUCIÓN MENSUAL: Mes | Ingresos | Costo | ... | Result.  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

var _ ports.IncomeStatementPDF = (*MarotoGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoGenerator implementa IncomeStatementPDF usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// IncomeStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoGenerator) IncomeStatementPDF(companyName string, st *dto.IncomeStatementDTO) ([]byte, error) {
	if st == nil {
		return nil, fmt.Errorf("pdf: estado de resultados nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Resultados", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(st)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(expenseRows(st)...)
	if len(st.Months) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(monthlyRows(st.Months)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(companyName string, st *dto.IncomeStatementDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ESTADO DE RESULTADOS", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Período: %s al %s", st.Period.From, st.Period.To), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+st.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRows(st *dto.IncomeStatementDTO) []core.Row {
	entry := func(label string, v decimal.Decimal, pct string, bold bool) core.Row {
		p := props.Text{Size: 10, Align: align.Right, Right: 1}
		l := props.Text{Size: 10, Left: 1}
		if bold {
			p.Style, l.Style = fontstyle.Bold, fontstyle.Bold
		}
		if v.IsNegative() {
			p.Color = colorRed
		}
		return row.New(7).Add(
			col.New(6).Add(text.New(label, l)),
			col.New(3).Add(text.New(Money(v), p)),
			col.New(3).Add(text.New(pct, props.Text{Size: 9, Align: align.Right, Right: 1, Color: colorGray})),
		)
	}
	return []core.Row{
		entry("Ingresos por ventas (neto)", st.Revenue, "", false),
		entry("(-) Costo de ventas", st.CostOfSales.Neg(), "", false),
		entry("Margen bruto", st.GrossMargin, st.GrossMarginPct.StringFixed(2)+" %", true),
		entry("(-) Gastos operacionales", st.TotalExpenses.Neg(), "", false),
		entry("Resultado operacional", st.OperatingResult, st.OperatingPct.StringFixed(2)+" %", true),
	}
}

func expenseRows(st *dto.IncomeStatementDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("GASTOS POR CATEGORÍA", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	if len(st.Expenses) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(text.New("Sin gastos registrados en el período.", props.Text{
			Size: 8, Color: colorGray, Left: 1,
		}))))
	}
	for _, e := range st.Expenses {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(e.Category, props.Text{Size: 9, Left: 3})),
			col.New(3).Add(text.New(Money(e.Amount), props.Text{Size: 9, Align: align.Right, Right: 1})),
			col.New(3).Add(text.New(e.SharePct.StringFixed(2)+" %", props.Text{Size: 8, Align: align.Right, Right: 1, Color: colorGray})),
		))
	}
	return rows
}

func monthlyRows(months []dto.IncomeStatementMonthDTO) []core.Row {
	h := func(label string, a align.Type) core.Col {
		return col.New(2).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Right: 1,
		}))
	}
	rows := []core.Row{row.New(8).Add(
		h("Mes", align.Left),
		h("Ingresos", align.Right),
		h("Costo", align.Right),
		h("Margen", align.Right),
		h("Gastos", align.Right),
		h("Resultado", align.Right),
	)}
	for _, m := range months {
		cell := func(v decimal.Decimal) core.Col {
			p := props.Text{Size: 8, Align: align.Right, Right: 1, Top: 1}
			if v.IsNegative() {
				p.Color = colorRed
			}
			return col.New(2).Add(text.New(Money(v), p))
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(m.Label, props.Text{Size: 8, Top: 1})),
			cell(m.Revenue),
			cell(m.CostOfSales),
			cell(m.GrossMargin),
			cell(m.Expenses),
			cell(m.OperatingRes),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// Money formatea pesos chilenos sin decimales con punto de miles.
// Ej: 1234567 → "$1.234.567", -500 → "-$500".
func Money(v decimal.Decimal) string {
	s := v.Abs().StringFixed(0)
	sign := ""
	if v.Round(0).IsNegative() {
		sign = "-"
	}
	return sign + "$" + formatThousands(s)
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	return b.String()
}

package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

var _ ports.ReportExporter = (*Exporter)(nil)

// Formato de pesos chilenos: sin decimales, punto de miles.
const clpFormat = `"$"#,##0;[Red]-"$"#,##0`

// Exporter implementa ports.ReportExporter con excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ── Empleados ─────────────────────────────────────────────────────────────────

var employeeHeaders = []string{
	"RUT", "Nombres", "Apellidos", "Email", "Teléfono", "Cargo",
	"Fecha ingreso", "Fecha nacimiento", "Sueldo base", "Jefe",
	"Sucursales", "Activo", "Discapacidad",
}

// EmployeesXLSX una fila por empleado.
func (e *Exporter) EmployeesXLSX(items []dto.EmployeeResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Empleados"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, sheet, 1, toAny(employeeHeaders)); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(employeeHeaders))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", st.header); err != nil {
		return nil, err
	}

	for i, emp := range items {
		branches := make([]string, 0, len(emp.Branches))
		for _, b := range emp.Branches {
			branches = append(branches, b.Name)
		}
		row := []any{
			emp.RUT, emp.FirstNames, emp.LastNames, emp.Email, emp.Phone, emp.Position,
			deref(emp.HireDate), deref(emp.BirthDate), emp.BaseSalary.InexactFloat64(), emp.ManagerName,
			strings.Join(branches, ", "), siNo(emp.Active), siNo(emp.Disability),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	if len(items) > 0 {
		if err := f.SetCellStyle(sheet, "I2", fmt.Sprintf("I%d", len(items)+1), st.money); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
		return nil, err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}
	return write(f)
}

// ── Estado de resultados ──────────────────────────────────────────────────────

// IncomeStatementXLSX hoja "Resumen" con el estado del período y hoja "Mensual" con la evolución.
func (e *Exporter) IncomeStatementXLSX(companyName string, s *dto.IncomeStatementDTO) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("xlsx: estado de resultados nil")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const summary, monthly = "Resumen", "Mensual"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	rows := [][]any{
		{companyName},
		{"Estado de resultados", fmt.Sprintf("%s al %s", s.Period.From, s.Period.To)},
		{},
		{"Ingresos por ventas (neto)", money(s.Revenue)},
		{"(-) Costo de ventas", money(s.CostOfSales.Neg())},
		{"Margen bruto", money(s.GrossMargin), pct(s.GrossMarginPct)},
		{},
		{"Gastos por categoría"},
	}
	for _, ex := range s.Expenses {
		rows = append(rows, []any{"   " + ex.Category, money(ex.Amount.Neg()), pct(ex.SharePct)})
	}
	rows = append(rows,
		[]any{"Total gastos", money(s.TotalExpenses.Neg())},
		[]any{},
		[]any{"Resultado operacional", money(s.OperatingResult), pct(s.OperatingPct)},
	)
	for i, r := range rows {
		if err := writeRow(f, summary, i+1, r); err != nil {
			return nil, err
		}
	}
	last := len(rows)
	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "A1", st.title},
		{"B4", fmt.Sprintf("B%d", last), st.money},
		{"C4", fmt.Sprintf("C%d", last), st.percent},
		{"A6", "C6", st.bold},
		{fmt.Sprintf("A%d", last), fmt.Sprintf("C%d", last), st.bold},
	}
	for _, x := range styles {
		if err := f.SetCellStyle(summary, x.from, x.to, x.style); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(summary, "A", "A", 34); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summary, "B", "C", 18); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(monthly); err != nil {
		return nil, err
	}
	if err := writeRow(f, monthly, 1, []any{"Mes", "Ingresos", "Costo de ventas", "Margen bruto", "Gastos", "Resultado operacional"}); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(monthly, "A1", "F1", st.header); err != nil {
		return nil, err
	}
	for i, m := range s.Months {
		r := []any{m.Label, money(m.Revenue), money(m.CostOfSales), money(m.GrossMargin), money(m.Expenses), money(m.OperatingRes)}
		if err := writeRow(f, monthly, i+2, r); err != nil {
			return nil, err
		}
	}
	if len(s.Months) > 0 {
		if err := f.SetCellStyle(monthly, "B2", fmt.Sprintf("F%d", len(s.Months)+1), st.money); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(monthly, "A", "F", 18); err != nil {
		return nil, err
	}
	return write(f)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type styles struct {
	header, title, bold, money, percent int
}

func newStyles(f *excelize.File) (*styles, error) {
	var st styles
	var err error
	clp := clpFormat
	pctFmt := `0.00"%"`
	defs := []struct {
		dst *int
		s   *excelize.Style
	}{
		{&st.header, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
		}},
		{&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "00467F"}}},
		{&st.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&st.money, &excelize.Style{CustomNumFmt: &clp}},
		{&st.percent, &excelize.Style{CustomNumFmt: &pctFmt}},
	}
	for _, d := range defs {
		if *d.dst, err = f.NewStyle(d.s); err != nil {
			return nil, err
		}
	}
	return &st, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func write(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) float64 { return d.Round(0).InexactFloat64() }

func pct(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

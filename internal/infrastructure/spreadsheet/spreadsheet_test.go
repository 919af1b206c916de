package spreadsheet_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/spreadsheet"
)

func TestReadRows_CSVPuntoYComaLatin1(t *testing.T) {
	// "Teléfono" y "Muñoz" en Windows-1252.
	data := []byte("rut;nombres;apellidos;Tel\xe9fono\n12.345.678-5;Ana;Mu\xf1oz;+56911111111\n;;;\n")
	rows, err := spreadsheet.NewReader().ReadRows("Empleados.CSV", data)
	require.NoError(t, err)
	require.Len(t, rows, 2, "las filas vacías del final se descartan")
	assert.Equal(t, "Teléfono", rows[0][3])
	assert.Equal(t, "Muñoz", rows[1][2])
}

func TestReadRows_CSVConBOM(t *testing.T) {
	data := []byte("\xef\xbb\xbfrut,nombres\n7654321-6,Luis\n")
	rows, err := spreadsheet.NewReader().ReadRows("e.csv", data)
	require.NoError(t, err)
	assert.Equal(t, []string{"rut", "nombres"}, rows[0])
	assert.Equal(t, "Luis", rows[1][1])
}

func TestReadRows_Rechazos(t *testing.T) {
	r := spreadsheet.NewReader()
	_, err := r.ReadRows("foto.png", []byte{1, 2})
	assert.ErrorIs(t, err, spreadsheet.ErrUnsupportedFormat)

	_, err = r.ReadRows("vacio.csv", []byte("\n\n"))
	assert.ErrorIs(t, err, spreadsheet.ErrEmptySheet)

	_, err = r.ReadRows("roto.xlsx", []byte("no es un zip"))
	assert.Error(t, err)
}

func TestEmployeesXLSX_SeLeeDeVuelta(t *testing.T) {
	hire := "2024-03-01"
	items := []dto.EmployeeResponse{{
		RUT: "12345678-5", FirstNames: "Ana", LastNames: "Muñoz", Email: "ana@demo.cl",
		HireDate: &hire, BaseSalary: decimal.NewFromInt(650000), Active: true,
		Branches: []dto.BranchRefResponse{{ID: "b1", Name: "Centro"}, {ID: "b2", Name: "Mall"}},
	}}
	out, err := spreadsheet.NewExporter().EmployeesXLSX(items)
	require.NoError(t, err)

	rows, err := spreadsheet.NewReader().ReadRows("empleados.xlsx", out)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "RUT", rows[0][0])
	assert.Equal(t, "12345678-5", rows[1][0])
	assert.Equal(t, "2024-03-01", rows[1][6])
	assert.Equal(t, "Centro, Mall", rows[1][10])
	assert.Equal(t, "Sí", rows[1][11])
}

func TestIncomeStatementXLSX(t *testing.T) {
	st := &dto.IncomeStatementDTO{
		Period:          dto.PeriodDTO{From: "2026-01-01", To: "2026-03-31"},
		Revenue:         decimal.NewFromInt(1500),
		CostOfSales:     decimal.NewFromInt(400),
		GrossMargin:     decimal.NewFromInt(1100),
		GrossMarginPct:  decimal.RequireFromString("73.33"),
		Expenses:        []dto.ExpenseLineDTO{{Category: "Arriendo", Amount: decimal.NewFromInt(100), SharePct: decimal.NewFromInt(100)}},
		TotalExpenses:   decimal.NewFromInt(100),
		OperatingResult: decimal.NewFromInt(1000),
		OperatingPct:    decimal.RequireFromString("66.67"),
		Months: []dto.IncomeStatementMonthDTO{
			{Month: "2026-01", Label: "Enero 2026", Revenue: decimal.NewFromInt(1500)},
		},
	}
	out, err := spreadsheet.NewExporter().IncomeStatementXLSX("Tiendas Demo SpA", st)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Resumen", "Mensual"}, f.GetSheetList())

	v, err := f.GetCellValue("Resumen", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tiendas Demo SpA", v)

	v, err = f.GetCellValue("Resumen", "A9")
	require.NoError(t, err)
	assert.Contains(t, v, "Arriendo")

	v, err = f.GetCellValue("Mensual", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Enero 2026", v)
}

package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
)

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "$0",
		"999":     "$999",
		"25000":   "$25.000",
		"1234567": "$1.234.567",
		"-500":    "-$500",
		"1500.6":  "$1.501",
		"-0.2":    "$0",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.Money(decimal.RequireFromString(in)), in)
	}
}

func TestIncomeStatementPDF(t *testing.T) {
	st := &dto.IncomeStatementDTO{
		Period:          dto.PeriodDTO{From: "2026-01-01", To: "2026-03-31"},
		Revenue:         decimal.NewFromInt(1500),
		CostOfSales:     decimal.NewFromInt(400),
		GrossMargin:     decimal.NewFromInt(1100),
		GrossMarginPct:  decimal.RequireFromString("73.33"),
		TotalExpenses:   decimal.NewFromInt(100),
		OperatingResult: decimal.NewFromInt(1000),
		OperatingPct:    decimal.RequireFromString("66.67"),
		Expenses: []dto.ExpenseLineDTO{
			{Category: "Arriendo", Amount: decimal.NewFromInt(100), SharePct: decimal.NewFromInt(100)},
		},
		Months: []dto.IncomeStatementMonthDTO{
			{Month: "2026-01", Label: "Enero 2026", Revenue: decimal.NewFromInt(1500), OperatingRes: decimal.NewFromInt(-100)},
		},
		GeneratedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}

	out, err := pdf.NewMarotoGenerator().IncomeStatementPDF("Tiendas Demo SpA", st)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")

	_, err = pdf.NewMarotoGenerator().IncomeStatementPDF("x", nil)
	assert.Error(t, err)
}

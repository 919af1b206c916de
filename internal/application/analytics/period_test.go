package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

func TestParsePeriod_PorDefectoMesEnCurso(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.Local)
	p, err := ParsePeriod(dto.PeriodRequest{}, now)
	require.NoError(t, err)
	assert.Equal(t, dto.PeriodDTO{From: "2026-03-01", To: "2026-03-15"}, p.DTO())
	assert.Equal(t, "2026-03-16", p.End().Format(dateLayout))
}

func TestParsePeriod_SoloDesde(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	p, err := ParsePeriod(dto.PeriodRequest{From: "2026-01-10"}, now)
	require.NoError(t, err)
	assert.Equal(t, dto.PeriodDTO{From: "2026-01-10", To: "2026-03-15"}, p.DTO())
}

func TestParsePeriod_Rechazos(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	cases := []dto.PeriodRequest{
		{From: "15-03-2026"},
		{To: "2026-02-30"},
		{From: "2026-03-10", To: "2026-03-01"},
		{From: "2023-01-01", To: "2026-01-01"},
	}
	for _, in := range cases {
		_, err := ParsePeriod(in, now)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Febrero 2026", monthLabel(time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "Diciembre 2025", monthLabel(time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)))
}

// Package analytics contiene los casos de uso de reportes: ventas por sucursal,
// consolidado multi-sucursal y estado de resultados.
package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

const (
	dateLayout    = "2006-01-02"
	maxPeriodDays = 731
)

// Period rango de fechas calendario, ambos extremos inclusivos.
type Period struct {
	From time.Time
	To   time.Time
}

// End primer instante posterior al período (para filtros fecha < End).
func (p Period) End() time.Time { return p.To.AddDate(0, 0, 1) }

// DTO formato de salida del período.
func (p Period) DTO() dto.PeriodDTO {
	return dto.PeriodDTO{From: p.From.Format(dateLayout), To: p.To.Format(dateLayout)}
}

// ParsePeriod interpreta desde/hasta (YYYY-MM-DD). Sin fechas se usa el mes en curso
// hasta hoy; con solo una, la otra toma el inicio de mes o el día de hoy.
func ParsePeriod(in dto.PeriodRequest, now time.Time) (Period, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	p := Period{
		From: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local),
		To:   today,
	}
	if s := strings.TrimSpace(in.From); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return p, domain.Invalid("desde", "fecha inválida, se espera YYYY-MM-DD")
		}
		p.From = t
	}
	if s := strings.TrimSpace(in.To); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return p, domain.Invalid("hasta", "fecha inválida, se espera YYYY-MM-DD")
		}
		p.To = t
	}
	if p.From.After(p.To) {
		return p, domain.Invalid("desde", "no puede ser posterior a hasta")
	}
	if p.To.Sub(p.From) > maxPeriodDays*24*time.Hour {
		return p, domain.Invalid("hasta", fmt.Sprintf("el período no puede superar %d días", maxPeriodDays))
	}
	return p, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}

package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/pkg/rut"
)

const dateLayout = "2006-01-02"

// parseOptionalDate convierte "YYYY-MM-DD" a *time.Time; vacío = nil.
func parseOptionalDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, domain.Invalid(field, "fecha inválida, se espera YYYY-MM-DD")
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// normalizeRUT valida el dígito verificador y devuelve la forma canónica.
func normalizeRUT(field, raw string) (string, error) {
	n, err := rut.Normalize(raw)
	if err != nil {
		return "", domain.Invalid(field, "RUT inválido")
	}
	return n, nil
}

// boolOr devuelve *b o def cuando no se informó. Los flags activo sin valor quedan en true.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// emptyToNil trata "" como referencia ausente.
func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

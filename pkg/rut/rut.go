// Package rut valida y normaliza el Rol Único Tributario chileno (RUT/RUN).
package rut

import (
	"fmt"
	"strings"
	"unicode"
)

// Rango razonable del cuerpo del RUT (sin dígito verificador).
const (
	minBodyDigits = 6
	maxBodyDigits = 9
)

// ComputeDV calcula el dígito verificador (módulo 11) de un cuerpo de RUT.
// Los pesos 2..7 se aplican de derecha a izquierda y se repiten.
func ComputeDV(body string) (byte, error) {
	digits := extractDigits(body)
	if len(digits) < minBodyDigits || len(digits) > maxBodyDigits {
		return 0, fmt.Errorf("rut: el cuerpo debe tener entre %d y %d dígitos, se encontraron %d", minBodyDigits, maxBodyDigits, len(digits))
	}
	return computeDV(digits), nil
}

func computeDV(digits []byte) byte {
	sum, weight := 0, 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + r)
	}
}

// Normalize valida el RUT (con o sin puntos/guion) y lo devuelve en forma canónica
// "12345678-5" con el dígito verificador en mayúscula.
func Normalize(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.NewReplacer(".", "", " ", "", "-", "").Replace(s)
	if len(s) < minBodyDigits+1 {
		return "", fmt.Errorf("rut: %q es demasiado corto", raw)
	}
	body, dv := s[:len(s)-1], s[len(s)-1]
	for _, r := range body {
		if !unicode.IsDigit(r) {
			return "", fmt.Errorf("rut: %q contiene caracteres inválidos", raw)
		}
	}
	body = strings.TrimLeft(body, "0")
	if len(body) < minBodyDigits || len(body) > maxBodyDigits {
		return "", fmt.Errorf("rut: el cuerpo debe tener entre %d y %d dígitos", minBodyDigits, maxBodyDigits)
	}
	if dv != 'K' && (dv < '0' || dv > '9') {
		return "", fmt.Errorf("rut: dígito verificador %q inválido", dv)
	}
	expected := computeDV([]byte(body))
	if dv != expected {
		return "", fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %c", expected, dv)
	}
	return body + "-" + string(dv), nil
}

// Valid informa si el RUT es válido.
func Valid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

// Format devuelve el RUT canónico con separador de miles: "12.345.678-5".
func Format(raw string) (string, error) {
	n, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	body, dv := n[:len(n)-2], n[len(n)-1:]
	var b strings.Builder
	for i, r := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + "-" + dv, nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}

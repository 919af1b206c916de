package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/pkg/rut"
)

// receiptPrompt instrucción común a ambos proveedores.
const receiptPrompt = `Eres un asistente que lee boletas y facturas electrónicas chilenas (SII).
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin texto adicional) con esta estructura exacta:
{
  "numero_boleta": "<folio de la boleta como string, vacío si no se ve>",
  "monto": <monto total en pesos chilenos, número entero sin separadores>,
  "fecha": "<fecha de emisión en formato YYYY-MM-DD, vacío si no se ve>",
  "rut_emisor": "<RUT del emisor con guion, vacío si no se ve>",
  "confianza": <número decimal entre 0.0 y 1.0>
}

Reglas:
- monto: el TOTAL de la boleta, no el neto ni el IVA.
- Si un campo no es legible déjalo vacío (o 0 en monto) y baja la confianza.
- No incluyas texto fuera del JSON.`

// maxResponseBytes tope de lectura del cuerpo de respuesta del proveedor.
const maxResponseBytes = 64 * 1024

// receiptPayload es el JSON que esperamos recibir del modelo.
// monto llega a veces como string ("12.990"), por eso json.RawMessage.
type receiptPayload struct {
	Number     string          `json:"numero_boleta"`
	Amount     json.RawMessage `json:"monto"`
	Date       string          `json:"fecha"`
	IssuerRUT  string          `json:"rut_emisor"`
	Confidence float64         `json:"confianza"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// parseReceipt convierte el texto del modelo en la lectura normalizada.
func parseReceipt(raw string) (*dto.ReceiptReading, error) {
	clean := extractJSON(raw)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", raw)
	}
	var p receiptPayload
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de la boleta: %w (JSON extraído: %s)", err, clean)
	}

	out := &dto.ReceiptReading{
		ReceiptNumber: strings.TrimSpace(p.Number),
		Amount:        parseAmount(p.Amount),
		Confidence:    clamp01(p.Confidence),
	}
	// Fechas ilegibles o inventadas por el modelo se descartan.
	if d := strings.TrimSpace(p.Date); d != "" {
		if _, err := time.Parse("2006-01-02", d); err == nil {
			out.Date = d
		}
	}
	if n, err := rut.Normalize(p.IssuerRUT); err == nil {
		out.IssuerRUT = n
	}
	return out, nil
}

// parseAmount acepta número JSON o string con separadores chilenos ("$12.990").
func parseAmount(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return decimal.Zero
		}
		s = strings.NewReplacer("$", "", ".", "", " ", "").Replace(str)
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(0)
}

// extractJSON extrae el primer objeto JSON de un texto libre.
// Primero quita los bloques de código markdown, luego recurre a la regex.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

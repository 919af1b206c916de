package ports

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// ReceiptReader define el puerto de salida para la lectura asistida de boletas.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type ReceiptReader interface {
	// ReadReceipt extrae número, monto, fecha y RUT emisor de la foto de una boleta.
	// El contexto debe llevar un timeout: son llamadas externas lentas.
	ReadReceipt(ctx context.Context, image []byte, mimeType string) (*dto.ReceiptReading, error)
}

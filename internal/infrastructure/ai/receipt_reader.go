package ai

import (
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/pkg/config"
)

// NewReceiptReader elige el proveedor según la configuración.
// Devuelve nil (OCR deshabilitado) si el proveedor elegido no tiene API key.
func NewReceiptReader(cfg config.AIConfig) (ports.ReceiptReader, error) {
	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("AI: proveedor desconocido %q (anthropic|gemini)", cfg.Provider)
	}
}

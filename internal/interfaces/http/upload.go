package http

import (
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// maxUploadBytes tope por archivo; el body limit de fiber cubre el request completo.
const maxUploadBytes = 10 << 20

type upload struct {
	Name string
	Mime string
	Data []byte
}

// readUpload lee el archivo multipart del campo indicado.
func readUpload(c *fiber.Ctx, field string) (*upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, domain.Invalid(field, "archivo requerido")
	}
	if fh.Size > maxUploadBytes {
		return nil, domain.Invalid(field, fmt.Sprintf("el archivo supera %d MB", maxUploadBytes>>20))
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.Invalid(field, "archivo vacío")
	}
	mime := fh.Header.Get(fiber.HeaderContentType)
	if mime == "" || mime == fiber.MIMEOctetStream {
		mime = nethttp.DetectContentType(data)
	}
	return &upload{Name: fh.Filename, Mime: mime, Data: data}, nil
}

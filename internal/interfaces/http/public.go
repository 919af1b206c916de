package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// publicCompany empresa de las rutas públicas (/api/public/.../:empresa).
func publicCompany(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("empresa"))
	if err != nil {
		return "", domain.ErrNotFound
	}
	return id.String(), nil
}

// paramID id de la ruta (/:id). Un id que no es UUID no puede existir: 404.
func paramID(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", domain.ErrNotFound
	}
	return id.String(), nil
}

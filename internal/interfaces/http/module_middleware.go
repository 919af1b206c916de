package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// moduleChecker es el contrato mínimo que necesita el middleware para verificar módulos.
// Lo implementa *usecase.ModuleService.
type moduleChecker interface {
	HasModule(ctx context.Context, companyID, profileID, module string) (bool, error)
}

// RequireModule verifica que el perfil del token habilite el módulo.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 si no hay empresa en el contexto.
//   - 403 si el perfil no incluye el módulo (el perfil admin los incluye todos).
//   - 503 ante fallo de infraestructura al consultar el perfil.
func RequireModule(module string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return unauthorized(c, "UNAUTHORIZED", "company_id no encontrado en el token")
		}

		ok, err := checker.HasModule(c.UserContext(), companyID, GetProfileID(c), module)
		if err != nil {
			log.Error().Err(err).Str("module", module).Str("company_id", companyID).Msg("verificar módulo")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "no se pudo verificar el módulo, intente más tarde",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el perfil no tiene acceso al módulo '" + module + "'",
			})
		}
		return c.Next()
	}
}

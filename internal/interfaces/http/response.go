package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// ── Respuestas exitosas ───────────────────────────────────────────────────────

func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(dto.Response{Success: true, Data: data})
}

func respondCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Data: data})
}

func respondMessage(c *fiber.Ctx, msg string) error {
	return c.JSON(dto.Response{Success: true, Message: msg})
}

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// sendFile responde un archivo descargable.
func sendFile(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ── Errores ───────────────────────────────────────────────────────────────────

// respondError traduce los errores de dominio a status HTTP. Es el único lugar
// donde se hace esa traducción; los 500 se registran con el error original.
func respondError(c *fiber.Ctx, err error) error {
	status, code, msg := classify(err)
	body := dto.ErrorResponse{Code: code, Message: msg, Error: err.Error()}

	var (
		ve *domain.ValidationError
		re *requestError
	)
	switch {
	case errors.As(err, &re):
		body.Fields, body.Error = re.fields, ""
	case errors.As(err, &ve) && ve.Field != "":
		body.Fields = map[string]string{ve.Field: ve.Msg}
	}
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error interno")
		if status == fiber.StatusInternalServerError {
			// No filtrar detalles de infraestructura al cliente.
			body.Error = ""
		}
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (status int, code, msg string) {
	var (
		re  *requestError
		ve  *domain.ValidationError
		de  *domain.DuplicateError
		iue *domain.InUseError
	)
	switch {
	case errors.As(err, &re):
		return fiber.StatusBadRequest, re.code, re.msg
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, "VALIDATION", ve.Error()
	case errors.As(err, &de):
		return fiber.StatusBadRequest, "DUPLICATE", de.Error()
	case errors.As(err, &iue):
		return fiber.StatusBadRequest, "IN_USE", iue.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", domain.ErrInvalidInput.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "DUPLICATE", domain.ErrDuplicate.Error()
	case errors.Is(err, domain.ErrInUse):
		return fiber.StatusBadRequest, "IN_USE", domain.ErrInUse.Error()
	case errors.Is(err, domain.ErrSeasonClosed):
		return fiber.StatusBadRequest, "SEASON_CLOSED", domain.ErrSeasonClosed.Error()
	case errors.Is(err, domain.ErrCodeRejected):
		return fiber.StatusBadRequest, "CODE_REJECTED", domain.ErrCodeRejected.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", domain.ErrNotFound.Error()
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT", domain.ErrConflict.Error()
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable, "UNAVAILABLE", err.Error()
	default:
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return fe.Code, "HTTP_ERROR", fe.Message
		}
		return fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor"
	}
}

// ErrorHandler para fiber.Config: errores no manejados por los handlers
// (404 de rutas, body demasiado grande, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

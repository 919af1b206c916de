package http

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// requestError entrada rechazada antes de llegar al caso de uso.
type requestError struct {
	code   string
	msg    string
	fields map[string]string
}

func (e *requestError) Error() string { return e.msg }

func (e *requestError) Unwrap() error { return domain.ErrInvalidInput }

// bindBody decodifica el cuerpo (JSON, form o multipart) y lo valida.
func bindBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return &requestError{code: "INVALID_BODY", msg: "cuerpo inválido"}
	}
	return check(dest)
}

// bindQuery decodifica y valida los parámetros de consulta.
func bindQuery(c *fiber.Ctx, dest any) error {
	if err := c.QueryParser(dest); err != nil {
		return &requestError{code: "INVALID_PARAMS", msg: "parámetros de consulta inválidos"}
	}
	return check(dest)
}

func check(dest any) error {
	fields, err := dto.Check(dest)
	if err != nil {
		return &requestError{code: "VALIDATION", msg: err.Error()}
	}
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return &requestError{
		code:   "VALIDATION",
		msg:    "datos inválidos: " + strings.Join(names, ", "),
		fields: fields,
	}
}

// bindToggle lee {"valor": bool} de los endpoints PATCH de flags.
func bindToggle(c *fiber.Ctx) (bool, error) {
	var in dto.ToggleRequest
	if err := bindBody(c, &in); err != nil {
		return false, err
	}
	return *in.Value, nil
}

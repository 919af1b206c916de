package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// SettingHandler configuración clave/valor de la empresa.
type SettingHandler struct {
	uc *usecase.SettingUseCase
}

// NewSettingHandler construye el handler.
func NewSettingHandler(uc *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

func (h *SettingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *SettingHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetCompanyID(c), c.Params("clave"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Upsert godoc
// @Summary      Crear o reemplazar una clave de configuración
// @Tags         configuracion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        clave  path  string              true  "Clave"
// @Param        body   body  dto.SettingRequest  true  "valor, descripcion"
// @Success      200    {object}  dto.Response{data=dto.SettingResponse}
// @Router       /api/configuracion/{clave} [put]
func (h *SettingHandler) Upsert(c *fiber.Ctx) error {
	var in dto.SettingRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Upsert(c.UserContext(), GetCompanyID(c), c.Params("clave"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *SettingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), c.Params("clave")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "clave eliminada")
}

// Season godoc
// @Summary      Temporada vigente del concurso (público)
// @Tags         public
// @Produce      json
// @Param        empresa  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response{data=dto.SeasonResponse}
// @Router       /api/public/temporada/{empresa} [get]
func (h *SettingHandler) Season(c *fiber.Ctx) error {
	companyID, err := publicCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Season(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

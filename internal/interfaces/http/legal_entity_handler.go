package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// LegalEntityHandler razones sociales de la empresa.
type LegalEntityHandler struct {
	uc *usecase.LegalEntityUseCase
}

// NewLegalEntityHandler construye el handler.
func NewLegalEntityHandler(uc *usecase.LegalEntityUseCase) *LegalEntityHandler {
	return &LegalEntityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear razón social
// @Tags         razones-sociales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LegalEntityRequest  true  "Datos de la razón social"
// @Success      201   {object}  dto.Response{data=dto.LegalEntityResponse}
// @Failure      400   {object}  dto.ErrorResponse  "RUT inválido o duplicado"
// @Router       /api/razones-sociales [post]
func (h *LegalEntityHandler) Create(c *fiber.Ctx) error {
	var in dto.LegalEntityRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// List godoc
// @Summary      Listar razones sociales
// @Tags         razones-sociales
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por RUT o nombre"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Response{data=dto.ListResponse[dto.LegalEntityResponse]}
// @Router       /api/razones-sociales [get]
func (h *LegalEntityHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GetByID godoc
// @Summary      Obtener razón social
// @Tags         razones-sociales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.Response{data=dto.LegalEntityResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/razones-sociales/{id} [get]
func (h *LegalEntityHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary      Actualizar razón social
// @Tags         razones-sociales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID"
// @Param        body  body  dto.LegalEntityRequest  true  "Datos de la razón social"
// @Success      200   {object}  dto.Response{data=dto.LegalEntityResponse}
// @Router       /api/razones-sociales/{id} [put]
func (h *LegalEntityHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.LegalEntityRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// SetActive godoc
// @Summary      Activar / desactivar razón social
// @Tags         razones-sociales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID"
// @Param        body  body  dto.ToggleRequest  true  "valor"
// @Success      200   {object}  dto.Response{data=dto.LegalEntityResponse}
// @Router       /api/razones-sociales/{id}/activo [patch]
func (h *LegalEntityHandler) SetActive(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	v, err := bindToggle(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetActive(c.UserContext(), GetCompanyID(c), id, v)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar razón social
// @Description  Falla con 400 si tiene empleados o sucursales asociados.
// @Tags         razones-sociales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/razones-sociales/{id} [delete]
func (h *LegalEntityHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "razón social eliminada")
}

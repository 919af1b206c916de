package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// CostCenterHandler centros de costo.
type CostCenterHandler struct {
	uc *usecase.CostCenterUseCase
}

// NewCostCenterHandler construye el handler.
func NewCostCenterHandler(uc *usecase.CostCenterUseCase) *CostCenterHandler {
	return &CostCenterHandler{uc: uc}
}

// Create godoc
// @Summary      Crear centro de costo
// @Tags         centros-costo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CostCenterRequest  true  "codigo, nombre"
// @Success      201   {object}  dto.Response{data=dto.CostCenterResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/centros-costo [post]
func (h *CostCenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CostCenterRequest
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
// @Summary      Listar centros de costo
// @Tags         centros-costo
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "Solo activos"
// @Success      200      {object}  dto.Response{data=[]dto.CostCenterResponse}
// @Router       /api/centros-costo [get]
func (h *CostCenterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), c.QueryBool("activos", false))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *CostCenterHandler) GetByID(c *fiber.Ctx) error {
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

func (h *CostCenterHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CostCenterRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar centro de costo
// @Description  Falla con 400 si hay empleados, compras o gastos imputados.
// @Tags         centros-costo
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/centros-costo/{id} [delete]
func (h *CostCenterHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "centro de costo eliminado")
}

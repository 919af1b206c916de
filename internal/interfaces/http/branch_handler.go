package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// BranchHandler sucursales y sus credenciales de base de punto de venta.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sucursal
// @Description  La contraseña de la base POS nunca se devuelve; la respuesta indica tiene_credenciales.
// @Tags         sucursales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BranchRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.Response{data=dto.BranchResponse}
// @Router       /api/sucursales [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.BranchRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *BranchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), c.QueryBool("activas", false))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
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

func (h *BranchHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.BranchRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "sucursal eliminada")
}

// TestConnection godoc
// @Summary      Probar la conexión a la base POS de la sucursal
// @Tags         sucursales
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.Response
// @Failure      503  {object}  dto.ErrorResponse  "Sucursal inalcanzable"
// @Router       /api/sucursales/{id}/test-connection [post]
func (h *BranchHandler) TestConnection(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.TestConnection(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "conexión exitosa")
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// DiscountHandler códigos de descuento y su validación pública.
type DiscountHandler struct {
	uc *usecase.DiscountUseCase
}

// NewDiscountHandler construye el handler.
func NewDiscountHandler(uc *usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

// Create godoc
// @Summary      Crear código de descuento
// @Description  El código se guarda en mayúsculas y es único por empresa.
// @Tags         descuentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DiscountCodeRequest  true  "Código"
// @Success      201   {object}  dto.Response{data=dto.DiscountCodeResponse}
// @Failure      400   {object}  dto.ErrorResponse  "Código duplicado o inválido"
// @Router       /api/descuentos [post]
func (h *DiscountHandler) Create(c *fiber.Ctx) error {
	var in dto.DiscountCodeRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *DiscountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), c.QueryBool("activos", false), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *DiscountHandler) GetByID(c *fiber.Ctx) error {
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

func (h *DiscountHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.DiscountCodeRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *DiscountHandler) SetActive(c *fiber.Ctx) error {
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

func (h *DiscountHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "código eliminado")
}

// Validate godoc
// @Summary      Validar código de descuento (público)
// @Description  No consume usos. motivo: no_existe, inactivo, no_vigente, expirado, agotado.
// @Tags         public
// @Produce      json
// @Param        empresa  path  string  true  "ID de la empresa"
// @Param        codigo   path  string  true  "Código"
// @Success      200  {object}  dto.Response{data=dto.DiscountValidationResponse}
// @Router       /api/public/descuentos/{empresa}/{codigo}/validar [get]
func (h *DiscountHandler) Validate(c *fiber.Ctx) error {
	companyID, err := publicCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Validate(c.UserContext(), companyID, c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Redeem godoc
// @Summary      Canjear código de descuento (público)
// @Description  Consume un uso solo si el código sigue vigente. Si no, responde 400 con el motivo en data.
// @Tags         public
// @Produce      json
// @Param        empresa  path  string  true  "ID de la empresa"
// @Param        codigo   path  string  true  "Código"
// @Success      200  {object}  dto.Response{data=dto.DiscountValidationResponse}
// @Failure      400  {object}  dto.Response{data=dto.DiscountValidationResponse}
// @Router       /api/public/descuentos/{empresa}/{codigo}/canjear [post]
func (h *DiscountHandler) Redeem(c *fiber.Ctx) error {
	companyID, err := publicCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Redeem(c.UserContext(), companyID, c.Params("codigo"))
	if errors.Is(err, domain.ErrCodeRejected) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false,
			Message: err.Error(),
			Data:    out,
		})
	}
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

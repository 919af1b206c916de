package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// ContestHandler concurso de boletas: participación pública y revisión interna.
type ContestHandler struct {
	uc *usecase.ContestUseCase
}

// NewContestHandler construye el handler.
func NewContestHandler(uc *usecase.ContestUseCase) *ContestHandler {
	return &ContestHandler{uc: uc}
}

// Participate godoc
// @Summary      Participar en el concurso (público)
// @Description  Rechaza con 400 SEASON_CLOSED si la temporada no está abierta y con 400 si el número de boleta ya participó.
// @Tags         public
// @Accept       multipart/form-data
// @Produce      json
// @Param        empresa        path      string  true   "ID de la empresa"
// @Param        rut            formData  string  true   "RUT"
// @Param        nombre         formData  string  true   "Nombre"
// @Param        email          formData  string  true   "Email"
// @Param        telefono       formData  string  true   "Teléfono"
// @Param        numero_boleta  formData  string  true   "Número de boleta"
// @Param        monto          formData  string  true   "Monto"
// @Param        fecha_boleta   formData  string  false  "YYYY-MM-DD"
// @Param        sucursal_id    formData  string  false  "Sucursal"
// @Param        imagen         formData  file    true   "Foto de la boleta"
// @Success      201  {object}  dto.Response{data=dto.ContestEntryResponse}
// @Router       /api/public/concurso/{empresa}/participar [post]
func (h *ContestHandler) Participate(c *fiber.Ctx) error {
	companyID, err := publicCompany(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ContestEntryRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	up, err := readUpload(c, "imagen")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Participate(c.UserContext(), companyID, in, up.Data)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// ReadReceipt godoc
// @Summary      Lectura asistida de la boleta (público)
// @Description  Sugiere numero_boleta, monto, fecha y rut_emisor a partir de la foto. 503 si no hay proveedor configurado.
// @Tags         public
// @Accept       multipart/form-data
// @Produce      json
// @Param        empresa  path      string  true  "ID de la empresa"
// @Param        imagen   formData  file    true  "Foto de la boleta"
// @Success      200  {object}  dto.Response{data=dto.ReceiptReading}
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/public/concurso/{empresa}/leer-boleta [post]
func (h *ContestHandler) ReadReceipt(c *fiber.Ctx) error {
	if _, err := publicCompany(c); err != nil {
		return respondError(c, err)
	}
	up, err := readUpload(c, "imagen")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ReadReceipt(c.UserContext(), up.Data, up.Mime)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *ContestHandler) List(c *fiber.Ctx) error {
	var in dto.ContestListRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *ContestHandler) GetByID(c *fiber.Ctx) error {
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

// Review godoc
// @Summary      Revisar participación
// @Tags         concurso
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID"
// @Param        body  body  dto.ContestReviewRequest  true  "estado, nota"
// @Success      200   {object}  dto.Response{data=dto.ContestEntryResponse}
// @Router       /api/concurso/{id}/revisar [patch]
func (h *ContestHandler) Review(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ContestReviewRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Review(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

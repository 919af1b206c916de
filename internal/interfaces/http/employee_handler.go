package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// EmployeeHandler ficha de empleados, foto, importación y exportación.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        search           query  string  false  "RUT, nombre o cargo"
// @Param        activo           query  bool    false  "Filtrar por estado"
// @Param        sucursal_id      query  string  false  "Sucursal"
// @Param        centro_costo_id  query  string  false  "Centro de costo"
// @Param        limit            query  int     false  "Límite"  default(20)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Response{data=dto.ListResponse[dto.EmployeeResponse]}
// @Router       /api/empleados [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var in dto.EmployeeListRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
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

// Create godoc
// @Summary      Crear empleado
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Ficha del empleado"
// @Success      201   {object}  dto.Response{data=dto.EmployeeResponse}
// @Failure      400   {object}  dto.ErrorResponse  "RUT inválido o duplicado"
// @Router       /api/empleados [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.EmployeeRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "empleado eliminado")
}

func (h *EmployeeHandler) SetActive(c *fiber.Ctx) error {
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

func (h *EmployeeHandler) SetDisability(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	v, err := bindToggle(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetDisability(c.UserContext(), GetCompanyID(c), id, v)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Subordinates empleados cuyo id_jefe es el empleado indicado.
func (h *EmployeeHandler) Subordinates(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Subordinates(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// UploadPhoto godoc
// @Summary      Subir foto del empleado
// @Description  La imagen se recorta a un cuadrado (centrado o según crop_x/crop_y/crop_size) y se guarda como JPEG.
// @Tags         empleados
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      string  true   "ID"
// @Param        foto       formData  file    true   "Imagen JPEG, PNG o WebP"
// @Param        crop_x     formData  int     false  "Origen X del recorte"
// @Param        crop_y     formData  int     false  "Origen Y del recorte"
// @Param        crop_size  formData  int     false  "Lado del recorte"
// @Success      200  {object}  dto.Response{data=dto.EmployeeResponse}
// @Router       /api/empleados/{id}/foto [post]
func (h *EmployeeHandler) UploadPhoto(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	up, err := readUpload(c, "foto")
	if err != nil {
		return respondError(c, err)
	}
	var crop *dto.PhotoCrop
	if c.FormValue("crop_size") != "" {
		crop = &dto.PhotoCrop{}
		if err := c.BodyParser(crop); err != nil {
			return respondError(c, &requestError{code: "INVALID_BODY", msg: "recorte inválido"})
		}
	}
	out, err := h.uc.UploadPhoto(c.UserContext(), GetCompanyID(c), id, up.Data, crop)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Import godoc
// @Summary      Importación masiva de empleados
// @Description  Acepta JSON {rows:[...]} o un archivo (campo "archivo") CSV, XLS o XLSX. Cada fila se procesa por separado y los errores se reportan por fila.
// @Tags         empleados
// @Security     Bearer
// @Accept       json,multipart/form-data
// @Produce      json
// @Param        archivo  formData  file  false  "CSV, XLS o XLSX"
// @Success      200  {object}  dto.Response{data=dto.ImportResult}
// @Router       /api/empleados/importar [post]
func (h *EmployeeHandler) Import(c *fiber.Ctx) error {
	ctx := c.UserContext()
	companyID := GetCompanyID(c)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		up, err := readUpload(c, "archivo")
		if err != nil {
			return respondError(c, err)
		}
		out, err := h.uc.ImportFile(ctx, companyID, up.Name, up.Data)
		if err != nil {
			return respondError(c, err)
		}
		return respondOK(c, out)
	}
	var in dto.EmployeeImportRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, &requestError{code: "INVALID_BODY", msg: "cuerpo inválido"})
	}
	// Las filas se validan una a una dentro del caso de uso.
	if len(in.Rows) == 0 {
		return respondError(c, &requestError{code: "VALIDATION", msg: "datos inválidos: rows", fields: map[string]string{"rows": "es obligatorio"}})
	}
	out, err := h.uc.Import(ctx, companyID, in.Rows)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Export godoc
// @Summary      Exportar empleados a Excel
// @Tags         empleados
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/empleados/exportar [get]
func (h *EmployeeHandler) Export(c *fiber.Ctx) error {
	var in dto.EmployeeListRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	data, err := h.uc.Export(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	name := "empleados_" + time.Now().Format("20060102") + ".xlsx"
	return sendFile(c, mimeXLSX, name, data)
}

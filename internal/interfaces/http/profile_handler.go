package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// ProfileHandler catálogo de módulos, perfiles y usuarios de la empresa.
type ProfileHandler struct {
	profiles *usecase.ProfileUseCase
	users    *usecase.UserUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(profiles *usecase.ProfileUseCase, users *usecase.UserUseCase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, users: users}
}

// Modules godoc
// @Summary      Catálogo de módulos
// @Tags         perfiles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ModuleResponse}
// @Router       /api/modulos [get]
func (h *ProfileHandler) Modules(c *fiber.Ctx) error {
	out, err := h.profiles.Modules(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Create godoc
// @Summary      Crear perfil
// @Description  Los módulos y sucursales del perfil se guardan en la misma transacción.
// @Tags         perfiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfileRequest  true  "nombre, modulos, sucursales"
// @Success      201   {object}  dto.Response{data=dto.ProfileResponse}
// @Router       /api/perfiles [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var in dto.ProfileRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.profiles.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *ProfileHandler) List(c *fiber.Ctx) error {
	out, err := h.profiles.List(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *ProfileHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.profiles.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ProfileRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.profiles.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Eliminar perfil
// @Description  Falla con 400 si el perfil tiene usuarios asignados.
// @Tags         perfiles
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/perfiles/{id} [delete]
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.profiles.Delete(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "perfil eliminado")
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

func (h *ProfileHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return respondError(c, err)
	}
	out, err := h.users.List(c.UserContext(), GetCompanyID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// UpdateUser godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID"
// @Param        body  body  dto.UpdateUserRequest  true  "nombre, perfil_id, estado, password"
// @Success      200   {object}  dto.Response{data=dto.UserResponse}
// @Router       /api/usuarios/{id} [put]
func (h *ProfileHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateUserRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.users.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// branchScoper sucursales visibles para el perfil del usuario (nil = todas).
type branchScoper interface {
	AllowedBranches(ctx context.Context, companyID, profileID string) ([]string, error)
}

// SalesHandler reportes de venta leídos desde la base POS de cada sucursal.
type SalesHandler struct {
	uc     *analytics.SalesUseCase
	scoper branchScoper
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *analytics.SalesUseCase, scoper branchScoper) *SalesHandler {
	return &SalesHandler{uc: uc, scoper: scoper}
}

func (h *SalesHandler) scope(c *fiber.Ctx) (analytics.Scope, error) {
	companyID := GetCompanyID(c)
	allowed, err := h.scoper.AllowedBranches(c.UserContext(), companyID, GetProfileID(c))
	if err != nil {
		return analytics.Scope{}, err
	}
	return analytics.Scope{CompanyID: companyID, Allowed: allowed}, nil
}

// BranchReport godoc
// @Summary      Ventas de una sucursal
// @Description  Consulta la base POS de la sucursal (la conexión se abre y se cierra en el request). 503 si la sucursal no responde.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "Sucursal"
// @Param        desde  query  string  false  "YYYY-MM-DD (default: inicio de mes)"
// @Param        hasta  query  string  false  "YYYY-MM-DD (default: hoy)"
// @Param        top    query  int     false  "Cantidad de productos"  default(10)
// @Success      200  {object}  dto.Response{data=dto.BranchSalesReport}
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/ventas/sucursal/{id} [get]
func (h *SalesHandler) BranchReport(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.BranchSalesRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	scope, err := h.scope(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.BranchReport(c.UserContext(), scope, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Consolidated godoc
// @Summary      Ventas consolidadas
// @Description  Consulta las sucursales en paralelo; el error de una sucursal se informa en su fila sin afectar a las demás.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde       query  string  false  "YYYY-MM-DD"
// @Param        hasta       query  string  false  "YYYY-MM-DD"
// @Param        sucursales  query  string  false  "IDs separados por coma"
// @Success      200  {object}  dto.Response{data=dto.ConsolidatedSalesReport}
// @Router       /api/ventas/consolidado [get]
func (h *SalesHandler) Consolidated(c *fiber.Ctx) error {
	var in dto.ConsolidatedSalesRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	for _, id := range strings.Split(in.Branches, ",") {
		if id = strings.TrimSpace(id); id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return respondError(c, &requestError{
				code:   "VALIDATION",
				msg:    "datos inválidos: sucursales",
				fields: map[string]string{"sucursales": "debe ser una lista de UUID separados por coma"},
			})
		}
	}
	scope, err := h.scope(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Consolidated(c.UserContext(), scope, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Sync godoc
// @Summary      Sincronizar ventas diarias
// @Description  Copia los totales diarios de la sucursal a ventas_resumen (entrada del estado de resultados).
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "Sucursal"
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.Response{data=dto.SyncResult}
// @Router       /api/ventas/sucursal/{id}/sincronizar [post]
func (h *SalesHandler) Sync(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PeriodRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	scope, err := h.scope(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Sync(c.UserContext(), scope, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

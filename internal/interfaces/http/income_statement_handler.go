package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// IncomeStatementHandler estado de resultados y sus entradas (compras y gastos).
type IncomeStatementHandler struct {
	report *analytics.IncomeStatementUseCase
	ledger *analytics.LedgerUseCase
}

// NewIncomeStatementHandler construye el handler.
func NewIncomeStatementHandler(report *analytics.IncomeStatementUseCase, ledger *analytics.LedgerUseCase) *IncomeStatementHandler {
	return &IncomeStatementHandler{report: report, ledger: ledger}
}

// Get godoc
// @Summary      Estado de resultados
// @Description  Ingresos (ventas_resumen), costo de ventas (compras), margen bruto, gastos por categoría, resultado operacional y detalle mensual.
// @Tags         estado-resultados
// @Security     Bearer
// @Produce      json
// @Param        desde            query  string  false  "YYYY-MM-DD"
// @Param        hasta            query  string  false  "YYYY-MM-DD"
// @Param        sucursal_id      query  string  false  "Sucursal"
// @Param        centro_costo_id  query  string  false  "Centro de costo"
// @Success      200  {object}  dto.Response{data=dto.IncomeStatementDTO}
// @Router       /api/estado-resultados [get]
func (h *IncomeStatementHandler) Get(c *fiber.Ctx) error {
	var in dto.IncomeStatementRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.report.Build(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// PDF godoc
// @Summary      Estado de resultados en PDF
// @Tags         estado-resultados
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/estado-resultados/pdf [get]
func (h *IncomeStatementHandler) PDF(c *fiber.Ctx) error {
	var in dto.IncomeStatementRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	data, err := h.report.PDF(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimePDF, "estado_resultados.pdf", data)
}

func (h *IncomeStatementHandler) XLSX(c *fiber.Ctx) error {
	var in dto.IncomeStatementRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	data, err := h.report.XLSX(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimeXLSX, "estado_resultados.xlsx", data)
}

// ── Compras ──────────────────────────────────────────────────────────────────

// CreatePurchase godoc
// @Summary      Registrar compra
// @Tags         estado-resultados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseRequest  true  "Compra"
// @Success      201   {object}  dto.Response{data=dto.PurchaseResponse}
// @Router       /api/compras [post]
func (h *IncomeStatementHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.ledger.CreatePurchase(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *IncomeStatementHandler) ListPurchases(c *fiber.Ctx) error {
	var in dto.LedgerListRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.ledger.ListPurchases(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *IncomeStatementHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.ledger.DeletePurchase(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "compra eliminada")
}

// ── Gastos ───────────────────────────────────────────────────────────────────

func (h *IncomeStatementHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.ledger.CreateExpense(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

func (h *IncomeStatementHandler) ListExpenses(c *fiber.Ctx) error {
	var in dto.LedgerListRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.ledger.ListExpenses(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

func (h *IncomeStatementHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.ledger.DeleteExpense(c.UserContext(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "gasto eliminado")
}

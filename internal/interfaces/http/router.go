package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName         string
	AuthUC          *auth.AuthUseCase
	CompanyUC       *usecase.CompanyUseCase
	LegalEntityUC   *usecase.LegalEntityUseCase
	CostCenterUC    *usecase.CostCenterUseCase
	BranchUC        *usecase.BranchUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	ProfileUC       *usecase.ProfileUseCase
	UserUC          *usecase.UserUseCase
	ModuleService   *usecase.ModuleService
	DiscountUC      *usecase.DiscountUseCase
	SettingUC       *usecase.SettingUseCase
	ContestUC       *usecase.ContestUseCase
	SalesUC         *analytics.SalesUseCase
	IncomeStatement *analytics.IncomeStatementUseCase
	LedgerUC        *analytics.LedgerUseCase
	JWTSecret       string

	// Opcionales.
	Metrics       *Metrics
	Ping          func(context.Context) error // salud de la base principal
	UploadsDir    string                      // si no está vacío, se sirve en UploadsPrefix
	UploadsPrefix string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", health(deps))
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	if deps.UploadsDir != "" {
		app.Static(deps.UploadsPrefix, deps.UploadsDir, fiber.Static{MaxAge: 3600})
	}

	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	discountHandler := NewDiscountHandler(deps.DiscountUC)
	settingHandler := NewSettingHandler(deps.SettingUC)
	contestHandler := NewContestHandler(deps.ContestUC)

	// Público: se registra antes del grupo protegido para no pasar por AuthMiddleware.
	api.Post("/auth/login", authHandler.Login)
	public := api.Group("/public")
	public.Get("/descuentos/:empresa/:codigo/validar", discountHandler.Validate)
	public.Post("/descuentos/:empresa/:codigo/canjear", discountHandler.Redeem)
	public.Get("/temporada/:empresa", settingHandler.Season)
	public.Post("/concurso/:empresa/participar", contestHandler.Participate)
	public.Post("/concurso/:empresa/leer-boleta", contestHandler.ReadReceipt)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	modules := deps.ModuleService
	require := func(module string) fiber.Handler { return RequireModule(module, modules) }

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/register", require(entity.ModuleUsers), authHandler.Register)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/empresas/actual", companyHandler.Current)
	protected.Get("/empresas/:id", companyHandler.GetByID)
	protected.Put("/empresas/:id", require(entity.ModuleSettings), companyHandler.Update)
	protected.Get("/empresas", require(entity.ModuleSettings), companyHandler.List)
	protected.Post("/empresas", require(entity.ModuleSettings), companyHandler.Create)

	legal := protected.Group("/razones-sociales", require(entity.ModuleLegalEntities))
	legalHandler := NewLegalEntityHandler(deps.LegalEntityUC)
	legal.Get("/", legalHandler.List)
	legal.Post("/", legalHandler.Create)
	legal.Get("/:id", legalHandler.GetByID)
	legal.Put("/:id", legalHandler.Update)
	legal.Patch("/:id/activo", legalHandler.SetActive)
	legal.Delete("/:id", legalHandler.Delete)

	costCenters := protected.Group("/centros-costo", require(entity.ModuleCostCenters))
	costCenterHandler := NewCostCenterHandler(deps.CostCenterUC)
	costCenters.Get("/", costCenterHandler.List)
	costCenters.Post("/", costCenterHandler.Create)
	costCenters.Get("/:id", costCenterHandler.GetByID)
	costCenters.Put("/:id", costCenterHandler.Update)
	costCenters.Delete("/:id", costCenterHandler.Delete)

	branches := protected.Group("/sucursales", require(entity.ModuleBranches))
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Post("/", branchHandler.Create)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)
	branches.Post("/:id/test-connection", branchHandler.TestConnection)

	employees := protected.Group("/empleados", require(entity.ModuleEmployees))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/exportar", employeeHandler.Export)
	employees.Post("/importar", employeeHandler.Import)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Patch("/:id/activo", employeeHandler.SetActive)
	employees.Patch("/:id/discapacidad", employeeHandler.SetDisability)
	employees.Post("/:id/foto", employeeHandler.UploadPhoto)
	employees.Get("/:id/subordinados", employeeHandler.Subordinates)

	profileHandler := NewProfileHandler(deps.ProfileUC, deps.UserUC)
	protected.Get("/modulos", require(entity.ModuleProfiles), profileHandler.Modules)
	profiles := protected.Group("/perfiles", require(entity.ModuleProfiles))
	profiles.Get("/", profileHandler.List)
	profiles.Post("/", profileHandler.Create)
	profiles.Get("/:id", profileHandler.GetByID)
	profiles.Put("/:id", profileHandler.Update)
	profiles.Delete("/:id", profileHandler.Delete)
	users := protected.Group("/usuarios", require(entity.ModuleUsers))
	users.Get("/", profileHandler.ListUsers)
	users.Put("/:id", profileHandler.UpdateUser)

	discounts := protected.Group("/descuentos", require(entity.ModuleDiscounts))
	discounts.Get("/", discountHandler.List)
	discounts.Post("/", discountHandler.Create)
	discounts.Get("/:id", discountHandler.GetByID)
	discounts.Put("/:id", discountHandler.Update)
	discounts.Patch("/:id/activo", discountHandler.SetActive)
	discounts.Delete("/:id", discountHandler.Delete)

	settings := protected.Group("/configuracion", require(entity.ModuleSettings))
	settings.Get("/", settingHandler.List)
	settings.Get("/:clave", settingHandler.Get)
	settings.Put("/:clave", settingHandler.Upsert)
	settings.Delete("/:clave", settingHandler.Delete)

	contest := protected.Group("/concurso", require(entity.ModuleContest))
	contest.Get("/", contestHandler.List)
	contest.Get("/:id", contestHandler.GetByID)
	contest.Patch("/:id/revisar", contestHandler.Review)

	sales := protected.Group("/ventas", require(entity.ModuleSales))
	salesHandler := NewSalesHandler(deps.SalesUC, modules)
	sales.Get("/consolidado", salesHandler.Consolidated)
	sales.Get("/sucursal/:id", salesHandler.BranchReport)
	sales.Post("/sucursal/:id/sincronizar", salesHandler.Sync)

	isHandler := NewIncomeStatementHandler(deps.IncomeStatement, deps.LedgerUC)
	report := protected.Group("/estado-resultados", require(entity.ModuleIncomeStatement))
	report.Get("/", isHandler.Get)
	report.Get("/pdf", isHandler.PDF)
	report.Get("/xlsx", isHandler.XLSX)
	purchases := protected.Group("/compras", require(entity.ModuleIncomeStatement))
	purchases.Get("/", isHandler.ListPurchases)
	purchases.Post("/", isHandler.CreatePurchase)
	purchases.Delete("/:id", isHandler.DeletePurchase)
	expenses := protected.Group("/gastos", require(entity.ModuleIncomeStatement))
	expenses.Get("/", isHandler.ListExpenses)
	expenses.Post("/", isHandler.CreateExpense)
	expenses.Delete("/:id", isHandler.DeleteExpense)
}

func health(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":  "degraded",
					"service": deps.AppName,
					"db":      err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	}
}

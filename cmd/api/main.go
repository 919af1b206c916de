package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	infraai "github.com/jhoicas/Backoffice-api/internal/infrastructure/ai"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/imaging"
	infrapdf "github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, "up"); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	// Repositorios
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	legalEntityRepo := postgres.NewLegalEntityRepository(pool)
	costCenterRepo := postgres.NewCostCenterRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	discountRepo := postgres.NewDiscountCodeRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	contestRepo := postgres.NewContestRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	incomeRepo := postgres.NewIncomeStatementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	branchConnector := postgres.NewBranchConnector()

	// Infraestructura de archivos, imágenes y reportes
	fileStorage, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("almacenamiento de archivos")
	}
	images := imaging.NewProcessor()
	sheets := spreadsheet.NewReader()
	exporter := spreadsheet.NewExporter()
	pdfGenerator := infrapdf.NewMarotoGenerator()

	// Lectura de boletas: sin API key el endpoint responde 503.
	receiptReader, err := infraai.NewReceiptReader(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de visión")
	}
	if receiptReader == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("lectura de boletas deshabilitada: falta API key")
	}

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	moduleSvc := usecase.NewModuleService(profileRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)
	employeeUC := usecase.NewEmployeeUseCase(usecase.EmployeeDeps{
		Repo:          employeeRepo,
		Tx:            txRunner,
		Branches:      branchRepo,
		LegalEntities: legalEntityRepo,
		CostCenters:   costCenterRepo,
		Storage:       fileStorage,
		Images:        images,
		Sheets:        sheets,
		Exporter:      exporter,
	})
	salesUC := analytics.NewSalesUseCase(branchRepo, branchConnector, ledgerRepo, analytics.SalesConfig{
		QueryTimeout:   cfg.Branch.QueryTimeout,
		MaxConcurrency: cfg.Branch.MaxConcurrency,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB << 20,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	metrics := httpRouter.NewMetrics()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http").Zerolog()))
	app.Use(metrics.Middleware())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	deps := httpRouter.RouterDeps{
		AppName:         cfg.App.Name,
		AuthUC:          authUC,
		CompanyUC:       usecase.NewCompanyUseCase(companyRepo),
		LegalEntityUC:   usecase.NewLegalEntityUseCase(legalEntityRepo),
		CostCenterUC:    usecase.NewCostCenterUseCase(costCenterRepo),
		BranchUC:        usecase.NewBranchUseCase(branchRepo, legalEntityRepo, branchConnector),
		EmployeeUC:      employeeUC,
		ProfileUC:       usecase.NewProfileUseCase(profileRepo, txRunner, userRepo, branchRepo),
		UserUC:          usecase.NewUserUseCase(userRepo, profileRepo),
		ModuleService:   moduleSvc,
		DiscountUC:      usecase.NewDiscountUseCase(discountRepo),
		SettingUC:       settingUC,
		ContestUC:       usecase.NewContestUseCase(contestRepo, branchRepo, settingUC, fileStorage, images, receiptReader),
		SalesUC:         salesUC,
		IncomeStatement: analytics.NewIncomeStatementUseCase(incomeRepo, companyRepo, pdfGenerator, exporter),
		LedgerUC:        analytics.NewLedgerUseCase(ledgerRepo, branchRepo, costCenterRepo),
		JWTSecret:       cfg.JWT.Secret,
		Metrics:         metrics,
		Ping:            pool.Ping,
	}
	if local, ok := fileStorage.(*storage.LocalStorage); ok {
		deps.UploadsDir = local.Dir()
		deps.UploadsPrefix = cfg.Storage.PublicPrefix
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

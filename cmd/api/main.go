package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/stocklens-api/internal/application/analytics"
	"github.com/jhoicas/stocklens-api/internal/application/auth"
	"github.com/jhoicas/stocklens-api/internal/application/inventory"
	"github.com/jhoicas/stocklens-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/stocklens-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stocklens-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stocklens-api/internal/interfaces/http"
	"github.com/jhoicas/stocklens-api/pkg/config"
	"github.com/jhoicas/stocklens-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	orgRepo := postgres.NewOrganizationRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, itemRepo)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo, itemRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	alertUC := usecase.NewAlertUseCase(alertRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(itemRepo, movementRepo, alertRepo)

	// PDF: reporte de valorización de inventario
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportsUC := usecase.NewReportsUseCase(
		itemRepo, categoryRepo, supplierRepo, movementRepo, orgRepo, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(profileRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockLens API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		DashboardUC:      dashboardUC,
		ReportsUC:        reportsUC,
		ItemUC:           itemUC,
		CategoryUC:       categoryUC,
		SupplierUC:       supplierUC,
		LocationUC:       locationUC,
		AlertUC:          alertUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		JWTSecret:        cfg.JWT.Secret,
	})

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

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

	"github.com/jhoicas/Kardex-api/internal/application/alerts"
	appanalytics "github.com/jhoicas/Kardex-api/internal/application/analytics"
	"github.com/jhoicas/Kardex-api/internal/application/auth"
	appforecast "github.com/jhoicas/Kardex-api/internal/application/forecast"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/application/notification"
	"github.com/jhoicas/Kardex-api/internal/application/ports"
	"github.com/jhoicas/Kardex-api/internal/application/reports"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	infraai "github.com/jhoicas/Kardex-api/internal/infrastructure/ai"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Kardex-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Kardex-api/internal/interfaces/http"
	"github.com/jhoicas/Kardex-api/pkg/config"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	notificationRepo := postgres.NewNotificationLogRepository(pool)
	forecastRepo := postgres.NewDemandForecastRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Notificaciones: webhook + log auditable con reintentos
	webhookSvc := notify.NewWebhookService(cfg.Notify.WebhookURL)
	dispatcher := notification.NewDispatcher(notificationRepo, webhookSvc, alertRepo, cfg.Notify.Recipient, log)

	// Alertas: el dispatcher despacha cada alerta recién creada
	alertsUC := alerts.NewUseCase(alertRepo, productRepo, poRepo, dispatcher, log)

	// Movimientos: tras cada commit se reevalúan las alertas del producto
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, movementRepo, alertsUC, log)

	// Predicción de demanda: proveedor configurable
	var predictor ports.DemandPredictor
	switch cfg.AI.Provider {
	case "anthropic":
		model := cfg.AI.Model
		if model == "" {
			model = "claude-3-5-haiku-20241022"
		}
		predictor = infraai.NewAnthropicService(cfg.AI.APIKey, model)
	default:
		model := cfg.AI.Model
		if model == "" {
			model = "gemini-1.5-flash"
		}
		predictor = infraai.NewGeminiService(cfg.AI.APIKey, model)
	}
	forecastUC := appforecast.NewUseCase(predictor, productRepo, movementRepo, forecastRepo, dispatcher, log)

	// Catálogo y órdenes
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locationRepo)
	purchaseOrderUC := usecase.NewPurchaseOrderUseCase(poRepo, supplierRepo, productRepo, registerMovementUC)

	// Dashboard y reportes
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, alertRepo, poRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportsUC := reports.NewUseCase(productRepo, movementRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Kardex API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		SupplierUC:       supplierUC,
		WarehouseUC:      warehouseUC,
		PurchaseOrderUC:  purchaseOrderUC,
		RegisterMovement: registerMovementUC,
		AlertsUC:         alertsUC,
		Dispatcher:       dispatcher,
		ForecastUC:       forecastUC,
		DashboardUC:      dashboardUC,
		ReportsUC:        reportsUC,
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

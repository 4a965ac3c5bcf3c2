package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Kardex-api/internal/application/alerts"
	appanalytics "github.com/jhoicas/Kardex-api/internal/application/analytics"
	appauth "github.com/jhoicas/Kardex-api/internal/application/auth"
	appforecast "github.com/jhoicas/Kardex-api/internal/application/forecast"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/application/notification"
	"github.com/jhoicas/Kardex-api/internal/application/reports"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *appauth.UseCase
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	SupplierUC       *usecase.SupplierUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	PurchaseOrderUC  *usecase.PurchaseOrderUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AlertsUC         *alerts.UseCase
	Dispatcher       *notification.Dispatcher
	ForecastUC       *appforecast.UseCase
	DashboardUC      *appanalytics.DashboardUseCase
	ReportsUC        *reports.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Cada grupo protegido pasa por el JWT y
// por la operación de la política que le corresponde.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", Require(appauth.OpManageCatalog), productHandler.Create)
	products.Get("/", Require(appauth.OpRead), productHandler.List)
	products.Get("/code/:code", Require(appauth.OpRead), productHandler.GetByCode)
	products.Get("/:id", Require(appauth.OpRead), productHandler.GetByID)
	products.Put("/:id", Require(appauth.OpManageCatalog), productHandler.Update)
	products.Delete("/:id", Require(appauth.OpManageCatalog), productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", Require(appauth.OpManageCatalog), categoryHandler.Create)
	categories.Get("/", Require(appauth.OpRead), categoryHandler.List)
	categories.Get("/:id", Require(appauth.OpRead), categoryHandler.GetByID)
	categories.Put("/:id", Require(appauth.OpManageCatalog), categoryHandler.Update)
	categories.Delete("/:id", Require(appauth.OpManageCatalog), categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", Require(appauth.OpManageCatalog), supplierHandler.Create)
	suppliers.Get("/", Require(appauth.OpRead), supplierHandler.List)
	suppliers.Get("/:id", Require(appauth.OpRead), supplierHandler.GetByID)
	suppliers.Put("/:id", Require(appauth.OpManageCatalog), supplierHandler.Update)
	suppliers.Delete("/:id", Require(appauth.OpManageCatalog), supplierHandler.Delete)

	// Warehouses y ubicaciones
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", Require(appauth.OpManageCatalog), warehouseHandler.Create)
	warehouses.Get("/", Require(appauth.OpRead), warehouseHandler.List)
	warehouses.Get("/:id", Require(appauth.OpRead), warehouseHandler.GetByID)
	warehouses.Put("/:id", Require(appauth.OpManageCatalog), warehouseHandler.Update)
	warehouses.Delete("/:id", Require(appauth.OpManageCatalog), warehouseHandler.Delete)
	warehouses.Get("/:id/locations", Require(appauth.OpRead), warehouseHandler.ListLocations)

	locations := protected.Group("/locations")
	locations.Post("/", Require(appauth.OpManageCatalog), warehouseHandler.CreateLocation)
	locations.Put("/:id", Require(appauth.OpManageCatalog), warehouseHandler.UpdateLocation)
	locations.Delete("/:id", Require(appauth.OpManageCatalog), warehouseHandler.DeleteLocation)

	// Inventory: movimientos y kardex
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/movements", Require(appauth.OpRegisterMovement), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", Require(appauth.OpRead), inventoryHandler.ListMovements)
	invGroup.Get("/kardex/:id", Require(appauth.OpRead), inventoryHandler.GetKardex)

	// Purchase orders
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Post("/", Require(appauth.OpManageOrders), orderHandler.Create)
	orders.Get("/", Require(appauth.OpRead), orderHandler.List)
	orders.Get("/:id", Require(appauth.OpRead), orderHandler.GetByID)
	orders.Put("/:id", Require(appauth.OpManageOrders), orderHandler.Update)
	orders.Post("/:id/items", Require(appauth.OpManageOrders), orderHandler.AddItem)
	orders.Post("/:id/transition", Require(appauth.OpManageOrders), orderHandler.Transition)

	// Alerts
	alertsGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertsUC)
	alertsGroup.Get("/", Require(appauth.OpRead), alertHandler.ListActive)
	alertsGroup.Get("/product/:id", Require(appauth.OpRead), alertHandler.GetByProduct)
	alertsGroup.Post("/recheck", Require(appauth.OpResolveAlert), alertHandler.RecheckAll)
	alertsGroup.Post("/recheck/:id", Require(appauth.OpResolveAlert), alertHandler.RecheckProduct)
	alertsGroup.Post("/check-pending-orders", Require(appauth.OpResolveAlert), alertHandler.CheckPendingOrders)
	alertsGroup.Post("/:id/resolve", Require(appauth.OpResolveAlert), alertHandler.Resolve)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Dispatcher)
	notifications.Get("/", Require(appauth.OpRead), notificationHandler.List)
	notifications.Post("/retry", Require(appauth.OpRetryNotifications), notificationHandler.Retry)
	notifications.Post("/process-alerts", Require(appauth.OpRetryNotifications), notificationHandler.ProcessAlerts)

	// Forecast
	forecastGroup := protected.Group("/forecast")
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	forecastGroup.Get("/:id", Require(appauth.OpGenerateForecast), forecastHandler.GetOrGenerate)
	forecastGroup.Get("/:id/history", Require(appauth.OpRead), forecastHandler.History)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", Require(appauth.OpRead), dashboardHandler.Summary)

	// Reports
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/kardex/:id", Require(appauth.OpRead), reportHandler.KardexPDF)
}

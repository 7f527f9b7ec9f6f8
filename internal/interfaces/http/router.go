package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/stocklens-api/internal/application/analytics"
	"github.com/jhoicas/stocklens-api/internal/application/auth"
	"github.com/jhoicas/stocklens-api/internal/application/inventory"
	"github.com/jhoicas/stocklens-api/internal/application/usecase"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	ReportsUC        *usecase.ReportsUseCase
	ItemUC           *usecase.ItemUseCase
	CategoryUC       *usecase.CategoryUseCase
	SupplierUC       *usecase.SupplierUseCase
	LocationUC       *usecase.LocationUseCase
	AlertUC          *usecase.AlertUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
// Autorización: cualquier rol autenticado lee; manager y admin escriben; solo
// admin elimina.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	writers := RequireRole(entity.RoleAdmin, entity.RoleManager)
	admins := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/organizations", authHandler.Organizations)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil autenticado y equipo
	profileHandler := NewProfileHandler(deps.AuthUC)
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)
	protected.Get("/organization/members", admins, profileHandler.Members)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Reports
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reports := protected.Group("/reports")
	reports.Get("/summary", reportsHandler.Summary)
	reports.Get("/export.csv", reportsHandler.ExportCSV)
	reports.Get("/valuation.pdf", reportsHandler.ValuationPDF)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery)
	items.Get("/", itemHandler.List)
	items.Post("/", writers, itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", writers, itemHandler.Update)
	items.Delete("/:id", admins, itemHandler.Delete)
	items.Get("/:id/movements", movementHandler.ListByItem)

	// Movements
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/", writers, movementHandler.Register)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", writers, categoryHandler.Create)
	categories.Put("/:id", writers, categoryHandler.Update)
	categories.Delete("/:id", admins, categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", writers, supplierHandler.Create)
	suppliers.Put("/:id", writers, supplierHandler.Update)
	suppliers.Delete("/:id", admins, supplierHandler.Delete)

	// Locations
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", writers, locationHandler.Create)
	locations.Put("/:id", writers, locationHandler.Update)
	locations.Delete("/:id", admins, locationHandler.Delete)

	// Alerts
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/:id/read", alertHandler.MarkRead)
	alerts.Post("/:id/acknowledge", writers, alertHandler.Acknowledge)
}

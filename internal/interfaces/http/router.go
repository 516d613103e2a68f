package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restaurante-api/internal/application/alerts"
	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/inventory"
	"github.com/jhoicas/restaurante-api/internal/application/orders"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngredientUC     *inventory.IngredientUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	OrderUC          *orders.UseCase
	OrderPDFUC       *orders.PDFUseCase
	SupplierUC       *usecase.SupplierUseCase
	SectorUC         *usecase.SectorUseCase
	RecipeUC         *usecase.RecipeUseCase
	DashboardUC      *usecase.DashboardUseCase
	AlertUC          *alerts.UseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ingredients (protegido)
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Get("/:id/movements", ingredientHandler.History)
	ingredients.Post("/:id/reconcile", RequireRole("admin"), ingredientHandler.Reconcile)

	// Inventory movements (protegido; cocina y admin)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/movements", RequireRole("admin", "cocina"), inventoryHandler.RegisterMovement)

	// Purchase orders (protegido; compras y admin para escritura)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	ordersGroup.Post("/", RequireRole("admin", "compras"), orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", RequireRole("admin", "compras"), orderHandler.Update)
	ordersGroup.Patch("/:id/status", RequireRole("admin", "compras"), orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/pdf", orderHandler.ExportPDF)

	// Suppliers (protegido; compras y admin para escritura)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequireRole("admin", "compras"), supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", RequireRole("admin", "compras"), supplierHandler.Update)

	// Sectors (protegido; escritura solo admin)
	sectors := protected.Group("/sectors")
	sectorHandler := NewSectorHandler(deps.SectorUC)
	sectors.Post("/", RequireRole("admin"), sectorHandler.Create)
	sectors.Get("/", sectorHandler.List)

	// Recipes (protegido; cocina y admin para escritura)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", RequireRole("admin", "cocina"), recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Put("/:id", RequireRole("admin", "cocina"), recipeHandler.Update)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Alerts (protegido)
	alertsGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alertsGroup.Get("/", alertHandler.List)
}

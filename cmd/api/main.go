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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/alerts"
	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/inventory"
	"github.com/jhoicas/restaurante-api/internal/application/orders"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	infrapdf "github.com/jhoicas/restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-api/pkg/config"
	"github.com/jhoicas/restaurante-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	sectorRepo := postgres.NewSectorRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Política de niveles y alertas: heurísticas operativas cargadas de config.
	thresholds := ledger.Thresholds{LowBand: decimal.NewFromFloat(cfg.Alert.LowBand)}
	alertPolicy := ledger.AlertPolicy{
		ExpiryWindow:  cfg.Alert.ExpiryWindow,
		DeliveryGrace: cfg.Alert.DeliveryGrace,
	}

	ingredientUC := inventory.NewIngredientUseCase(txRunner, ingredientRepo, movementRepo, thresholds)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, ingredientRepo, sectorRepo)
	orderUC := orders.NewUseCase(txRunner, orderRepo, supplierRepo, sectorRepo, ingredientRepo)

	// PDF: ordem de compra para enviar al fornecedor
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.RestaurantName)
	orderPDFUC := orders.NewPDFUseCase(orderRepo, supplierRepo, ingredientRepo, pdfGenerator)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	sectorUC := usecase.NewSectorUseCase(sectorRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, ingredientRepo)
	dashboardUC := usecase.NewDashboardUseCase(ingredientRepo, supplierRepo, orderRepo, movementRepo)
	alertUC := alerts.NewUseCase(ingredientRepo, orderRepo, alertPolicy)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Restaurante API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		IngredientUC:     ingredientUC,
		RegisterMovement: registerMovementUC,
		OrderUC:          orderUC,
		OrderPDFUC:       orderPDFUC,
		SupplierUC:       supplierUC,
		SectorUC:         sectorUC,
		RecipeUC:         recipeUC,
		DashboardUC:      dashboardUC,
		AlertUC:          alertUC,
		AuthUC:           authUC,
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

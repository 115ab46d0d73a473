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

	_ "github.com/tu-usuario/bodega-api/docs"
	appanalytics "github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/bodega-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/bodega-api/internal/interfaces/http"
	"github.com/tu-usuario/bodega-api/pkg/config"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

// @title                      Bodega API
// @version                    1.0
// @description                API de inventario de bodega: productos, lotes con vencimiento, entradas y salidas FEFO.
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       X-API-Key
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

	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewStockBatchRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoLogGenerator()

	productUC := usecase.NewProductUseCase(productRepo, batchRepo, cfg.Stock.NearExpiryDays)
	stockInUC := inventory.NewStockInUseCase(txRunner)
	stockOutUC := inventory.NewStockOutUseCase(txRunner)
	movementLogUC := inventory.NewMovementLogUseCase(movementRepo, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, cfg.Stock.NearExpiryDays)

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
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		StockIn:     stockInUC,
		StockOut:    stockOutUC,
		MovementLog: movementLogUC,
		DashboardUC: dashboardUC,
		APIKey:      cfg.Auth.APIKey,
		APIKeyHash:  cfg.Auth.APIKeyHash,
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

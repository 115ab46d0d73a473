package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	StockIn     *inventory.StockInUseCase
	StockOut    *inventory.StockOutUseCase
	MovementLog *inventory.MovementLogUseCase
	DashboardUC *appanalytics.DashboardUseCase
	APIKey      string
	APIKeyHash  string
}

// Router registra las rutas de la API. Todo /api exige el secreto compartido.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", APIKeyMiddleware(deps.APIKey, deps.APIKeyHash))

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock: entradas, salidas FEFO y log de movimientos
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockIn, deps.StockOut, deps.MovementLog)
	stock.Post("/in", stockHandler.StockIn)
	stock.Post("/out", stockHandler.StockOut)
	stock.Get("/logs", stockHandler.GetLogs)
	stock.Get("/logs/export", stockHandler.ExportLogs)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}

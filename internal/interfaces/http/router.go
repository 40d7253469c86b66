package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/stock"
)

// StockManagerRoles roles con la capacidad de gestionar stock en la tienda.
var StockManagerRoles = []string{"admin", "shop_manager"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC    *stock.StockUseCase
	SettingsUC *stock.SettingsUseCase
	ImportUC   *stock.ImportUseCase
	AlertUC    *stock.AlertUseCase
	Limiter    *RateLimiter
	JWTSecret  string
}

// Router registra las rutas de la API. Todas requieren Bearer Token y rol de gestión de stock.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(StockManagerRoles...))

	stockHandler := NewStockHandler(deps.StockUC)
	alertHandler := NewAlertHandler(deps.AlertUC)
	stockGroup := api.Group("/stock")
	if deps.Limiter != nil {
		stockGroup.Get("/", deps.Limiter.Middleware(), stockHandler.RESTStock)
	} else {
		stockGroup.Get("/", stockHandler.RESTStock)
	}
	stockGroup.Get("/products", stockHandler.List)
	stockGroup.Get("/summary", stockHandler.Summary)
	stockGroup.Get("/value", stockHandler.Value)
	stockGroup.Get("/export.csv", stockHandler.ExportCSV)
	stockGroup.Get("/report.pdf", stockHandler.ReportPDF)
	stockGroup.Post("/events", alertHandler.Event)
	stockGroup.Post("/digest", alertHandler.Digest)

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := api.Group("/settings")
	settings.Get("/thresholds", settingsHandler.Get)
	settings.Put("/thresholds", settingsHandler.Update)

	catalogHandler := NewCatalogHandler(deps.ImportUC)
	api.Post("/catalog/import", catalogHandler.Import)
}

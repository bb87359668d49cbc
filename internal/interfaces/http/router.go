package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC   *usecase.ItemUseCase
	EnrichUC *usecase.EnrichUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Inventario CRUD
	items := app.Group("/inventory")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Enriquecimiento vía OpenFoodFacts
	enrich := app.Group("/enrich")
	enrichHandler := NewEnrichHandler(deps.EnrichUC)
	enrich.Get("/barcode/:barcode", enrichHandler.ByBarcode)
	enrich.Get("/search", enrichHandler.Search)
}

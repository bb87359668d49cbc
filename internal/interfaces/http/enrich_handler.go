package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// EnrichHandler expone las consultas de enriquecimiento contra OpenFoodFacts.
// "Producto desconocido" (404) y "fallo del upstream" (502) son resultados
// distintos: nunca se colapsan en uno.
type EnrichHandler struct {
	uc *usecase.EnrichUseCase
}

// NewEnrichHandler construye el handler.
func NewEnrichHandler(uc *usecase.EnrichUseCase) *EnrichHandler {
	return &EnrichHandler{uc: uc}
}

// ByBarcode GET /enrich/barcode/:barcode
func (h *EnrichHandler) ByBarcode(c *fiber.Ctx) error {
	out, err := h.uc.ByBarcode(c.UserContext(), c.Params("barcode"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No product found for barcode"})
		}
		return upstreamError(c)
	}
	return c.JSON(out)
}

// Search GET /enrich/search?q=texto
func (h *EnrichHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return badRequest(c, "Missing query param 'q'")
	}
	out, err := h.uc.ByName(c.UserContext(), q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No product found for query"})
		}
		return upstreamError(c)
	}
	return c.JSON(out)
}

func upstreamError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "Upstream lookup failed"})
}

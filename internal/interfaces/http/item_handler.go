package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// ItemHandler maneja las peticiones HTTP del inventario.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List GET /inventory — instantánea completa en orden de inserción.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID GET /inventory/:id
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		// Un ID no numérico equivale a un recurso inexistente
		return notFound(c)
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Create POST /inventory — valida la presencia de los campos requeridos antes
// de delegar. price: 0 y stock: 0 cuentan como presentes.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.Name == nil || in.Brand == nil || in.Price == nil || in.Stock == nil {
		return badRequest(c, "Missing required fields: name, brand, price, stock")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "price and stock must be non-negative")
		}
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PATCH /inventory/:id — actualización parcial: solo las claves
// presentes en el cuerpo tocan el artículo.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "price and stock must be non-negative")
		}
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete DELETE /inventory/:id — 204 sin cuerpo si se eliminó.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}
	if !h.uc.Delete(id) {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}

package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// ItemUpdate actualización parcial de un artículo: un slot por campo
// reconocido. Un puntero nil significa "no tocar ese campo"; los campos
// ausentes del request nunca llegan aquí con valor.
type ItemUpdate struct {
	Name        *string
	Brand       *string
	Barcode     *string
	Price       *decimal.Decimal
	Stock       *int
	Ingredients *string
}

// ItemRepository puerto de acceso a la colección de inventario.
// La implementación es dueña exclusiva de la colección y del contador de IDs.
type ItemRepository interface {
	// List devuelve una copia de la colección en orden de inserción.
	List() []entity.Item
	// Get devuelve el artículo o domain.ErrNotFound.
	Get(id int64) (*entity.Item, error)
	// Add asigna el siguiente ID (ignora el que traiga item) y almacena.
	Add(item entity.Item) entity.Item
	// Update aplica solo los campos presentes en patch. Si el ID no existe
	// devuelve domain.ErrNotFound sin mutar nada.
	Update(id int64, patch ItemUpdate) (*entity.Item, error)
	// Delete elimina el artículo; false si el ID no existe.
	Delete(id int64) bool
}

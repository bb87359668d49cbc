package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que ItemRepository implementa el puerto.
var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository colección de inventario en memoria del proceso.
// Toda operación se serializa con un único mutex: dos Add concurrentes nunca
// reciben el mismo ID y un Delete compitiendo con un Get resuelve siempre a
// "encontrado" o "no encontrado", jamás a un estado intermedio.
type ItemRepository struct {
	mu     sync.Mutex
	items  []entity.Item
	nextID int64
}

// Option configura el repositorio al construirlo.
type Option func(*ItemRepository)

// WithSeed precarga dos artículos de ejemplo (modo demo del binario api).
func WithSeed() Option {
	return func(r *ItemRepository) {
		seed := []entity.Item{
			{
				Name:        "Organic Almond Milk",
				Brand:       "Silk",
				Barcode:     strPtr("00889497005726"),
				Price:       decimal.NewFromFloat(3.99),
				Stock:       12,
				Ingredients: strPtr("Filtered water, almonds, cane sugar"),
			},
			{
				Name:        "Dark Chocolate Bar 70%",
				Brand:       "Green & Black's",
				Barcode:     strPtr("0741082412312"),
				Price:       decimal.NewFromFloat(2.49),
				Stock:       30,
				Ingredients: strPtr("Cocoa mass, sugar, cocoa butter, vanilla"),
			},
		}
		for _, it := range seed {
			it.ID = r.nextID
			r.nextID++
			r.items = append(r.items, it)
		}
	}
}

// NewItemRepository construye un repositorio vacío (o sembrado vía opciones).
func NewItemRepository(opts ...Option) *ItemRepository {
	r := &ItemRepository{nextID: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List devuelve una instantánea de la colección en orden de inserción.
// Mutar la copia no afecta al repositorio.
func (r *ItemRepository) List() []entity.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Get devuelve una copia del artículo o domain.ErrNotFound.
func (r *ItemRepository) Get(id int64) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Add asigna el siguiente ID del contador monótono y almacena el artículo.
// El contador nunca se reinicia ni reutiliza valores tras un Delete.
func (r *ItemRepository) Add(item entity.Item) entity.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item
}

// Update sobreescribe únicamente los campos presentes en patch; el resto del
// artículo queda intacto. Con un ID inexistente no muta nada.
func (r *ItemRepository) Update(id int64, patch repository.ItemUpdate) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		it := &r.items[i]
		if patch.Name != nil {
			it.Name = *patch.Name
		}
		if patch.Brand != nil {
			it.Brand = *patch.Brand
		}
		if patch.Barcode != nil {
			it.Barcode = patch.Barcode
		}
		if patch.Price != nil {
			it.Price = *patch.Price
		}
		if patch.Stock != nil {
			it.Stock = *patch.Stock
		}
		if patch.Ingredients != nil {
			it.Ingredients = patch.Ingredients
		}
		updated := *it
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

// Delete elimina el artículo conservando el orden de inserción del resto.
func (r *ItemRepository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }

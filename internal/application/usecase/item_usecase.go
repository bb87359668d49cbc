package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD del inventario sobre el puerto de repositorio.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// List devuelve la instantánea completa del inventario.
func (uc *ItemUseCase) List() []dto.ItemResponse {
	items := uc.repo.List()
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *toItemResponse(&items[i]))
	}
	return out
}

// Get obtiene un artículo por ID.
func (uc *ItemUseCase) Get(id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Create crea un artículo nuevo. La presencia de los campos requeridos
// (name, brand, price, stock) la valida el handler; aquí price y stock
// ausentes toman 0 por defecto y los negativos se rechazan.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	price := decimal.Zero
	if in.Price != nil {
		price = *in.Price
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if price.IsNegative() || stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	name := ""
	if in.Name != nil {
		name = *in.Name
	}
	brand := ""
	if in.Brand != nil {
		brand = *in.Brand
	}
	item := uc.repo.Add(entity.Item{
		Name:        name,
		Brand:       brand,
		Barcode:     in.Barcode,
		Price:       price,
		Stock:       stock,
		Ingredients: in.Ingredients,
	})
	return toItemResponse(&item), nil
}

// Update aplica una actualización parcial: solo los campos presentes en el
// request tocan el artículo. ID inexistente devuelve domain.ErrNotFound sin
// mutación alguna.
func (uc *ItemUseCase) Update(id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.Update(id, repository.ItemUpdate{
		Name:        in.Name,
		Brand:       in.Brand,
		Barcode:     in.Barcode,
		Price:       in.Price,
		Stock:       in.Stock,
		Ingredients: in.Ingredients,
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo; false si el ID no existe.
func (uc *ItemUseCase) Delete(id int64) bool {
	return uc.repo.Delete(id)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Brand:       it.Brand,
		Barcode:     it.Barcode,
		Price:       it.Price,
		Stock:       it.Stock,
		Ingredients: it.Ingredients,
	}
}

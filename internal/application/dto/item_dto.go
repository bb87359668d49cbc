package dto

import "github.com/shopspring/decimal"

// CreateItemRequest entrada para crear un artículo. Todos los campos son
// punteros para distinguir "ausente" de "presente con valor cero": price: 0 y
// stock: 0 cuentan como presentes para la validación de requeridos.
// decimal.Decimal acepta número JSON o cadena numérica; un valor no numérico
// invalida el cuerpo completo de la petición.
type CreateItemRequest struct {
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Barcode     *string          `json:"barcode"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Ingredients *string          `json:"ingredients"`
}

// UpdateItemRequest actualización parcial: un slot opcional por campo
// reconocido. Las claves ausentes quedan en nil y no tocan el artículo;
// las claves no reconocidas se descartan al decodificar (no son error).
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Barcode     *string          `json:"barcode"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Ingredients *string          `json:"ingredients"`
}

// ItemResponse salida de un artículo del inventario.
type ItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Barcode     *string         `json:"barcode"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Ingredients *string         `json:"ingredients"`
}

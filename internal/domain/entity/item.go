package entity

import "github.com/shopspring/decimal"

// Item representa un artículo almacenado en el inventario de la despensa.
// El ID lo asigna el repositorio: entero positivo, estrictamente creciente y
// nunca reutilizado, ni siquiera después de borrar el artículo.
type Item struct {
	ID          int64
	Name        string
	Brand       string
	Barcode     *string // opcional; no se valida unicidad
	Price       decimal.Decimal
	Stock       int
	Ingredients *string // texto libre, opcional
}

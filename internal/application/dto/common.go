package dto

import "github.com/shopspring/decimal"

func init() {
	// Los precios viajan como número JSON ({"price": 3.99}), no como cadena.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error de la API: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

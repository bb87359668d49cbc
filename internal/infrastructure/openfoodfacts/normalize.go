package openfoodfacts

import "github.com/jhoicas/despensa-api/internal/application/dto"

// Normalize convierte el payload arbitrario de un producto OpenFoodFacts a la
// forma interna. El upstream no garantiza esquema más allá de las cadenas de
// claves documentadas aquí, así que la entrada es un mapa genérico.
//
// Función pura y total: claves ausentes, vacías o con valores no textuales
// producen nil en el campo correspondiente, nunca un error.
func Normalize(raw map[string]any) dto.ExternalProduct {
	return dto.ExternalProduct{
		Name:            stringField(raw, "product_name"),
		Brand:           stringField(raw, "brands"),
		Barcode:         stringField(raw, "code", "_id"),
		Ingredients:     stringField(raw, "ingredients_text"),
		NutriscoreGrade: stringField(raw, "nutriscore_grade"),
		ImageURL:        stringField(raw, "image_front_url", "image_url"),
	}
}

// stringField devuelve el primer valor textual no vacío siguiendo el orden de
// claves dado (cadena de fallback).
func stringField(raw map[string]any, keys ...string) *string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

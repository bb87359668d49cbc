package dto

// ExternalProduct vista normalizada y de solo lectura de un producto de
// OpenFoodFacts. Nunca se persiste y nunca la construye un llamador a mano:
// siempre sale del normalizador. Todos los campos son anulables porque los
// datos del upstream son incompletos por naturaleza.
type ExternalProduct struct {
	Name            *string `json:"name"`
	Brand           *string `json:"brand"`
	Barcode         *string `json:"barcode"`
	Ingredients     *string `json:"ingredients"`
	NutriscoreGrade *string `json:"nutriscore_grade"`
	ImageURL        *string `json:"image_url"`
}

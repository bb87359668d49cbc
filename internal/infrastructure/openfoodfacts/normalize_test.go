package openfoodfacts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/infrastructure/openfoodfacts"
)

func TestNormalize_MapaVacioProduceTodoNil(t *testing.T) {
	p := openfoodfacts.Normalize(map[string]any{})

	assert.Nil(t, p.Name)
	assert.Nil(t, p.Brand)
	assert.Nil(t, p.Barcode)
	assert.Nil(t, p.Ingredients)
	assert.Nil(t, p.NutriscoreGrade)
	assert.Nil(t, p.ImageURL)
}

func TestNormalize_ClavesAjenasSeIgnoran(t *testing.T) {
	p := openfoodfacts.Normalize(map[string]any{
		"categories": "beverages",
		"labels":     "organic",
	})
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Barcode)
}

func TestNormalize_BarcodeCaeA_ID(t *testing.T) {
	p := openfoodfacts.Normalize(map[string]any{"_id": "999"})

	require.NotNil(t, p.Barcode)
	assert.Equal(t, "999", *p.Barcode)
}

func TestNormalize_PrefiereCodeSobre_ID(t *testing.T) {
	p := openfoodfacts.Normalize(map[string]any{
		"code": "123",
		"_id":  "999",
	})

	require.NotNil(t, p.Barcode)
	assert.Equal(t, "123", *p.Barcode)
}

func TestNormalize_ImagenPrefiereFrontal(t *testing.T) {
	p := openfoodfacts.Normalize(map[string]any{
		"image_front_url": "https://img/front.jpg",
		"image_url":       "https://img/any.jpg",
	})
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "https://img/front.jpg", *p.ImageURL)

	p = openfoodfacts.Normalize(map[string]any{"image_url": "https://img/any.jpg"})
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "https://img/any.jpg", *p.ImageURL)
}

func TestNormalize_ValoresNoTextualesCuentanComoAusentes(t *testing.T) {
	p := openfoodfacts.Normalize(map[string]any{
		"product_name": 42,
		"brands":       nil,
		"code":         "",
	})

	assert.Nil(t, p.Name)
	assert.Nil(t, p.Brand)
	assert.Nil(t, p.Barcode)
}

func TestNormalize_ProductoCompleto(t *testing.T) {
	p := openfoodfacts.Normalize(map[string]any{
		"product_name":     "Almond Milk",
		"brands":           "Silk",
		"code":             "123",
		"ingredients_text": "Filtered water, almonds",
		"nutriscore_grade": "b",
		"image_front_url":  "https://img/front.jpg",
	})

	require.NotNil(t, p.Name)
	assert.Equal(t, "Almond Milk", *p.Name)
	require.NotNil(t, p.Brand)
	assert.Equal(t, "Silk", *p.Brand)
	require.NotNil(t, p.Barcode)
	assert.Equal(t, "123", *p.Barcode)
	require.NotNil(t, p.Ingredients)
	assert.Equal(t, "Filtered water, almonds", *p.Ingredients)
	require.NotNil(t, p.NutriscoreGrade)
	assert.Equal(t, "b", *p.NutriscoreGrade)
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "https://img/front.jpg", *p.ImageURL)
}

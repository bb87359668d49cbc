package usecase

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/ports"
)

// EnrichUseCase enriquecimiento de productos vía la base de datos externa de
// alimentos. No guarda estado: cada consulta es independiente.
type EnrichUseCase struct {
	lookup ports.ProductLookup
}

// NewEnrichUseCase construye el caso de uso.
func NewEnrichUseCase(lookup ports.ProductLookup) *EnrichUseCase {
	return &EnrichUseCase{lookup: lookup}
}

// ByBarcode busca el producto por código de barras exacto.
func (uc *EnrichUseCase) ByBarcode(ctx context.Context, barcode string) (*dto.ExternalProduct, error) {
	return uc.lookup.FetchByBarcode(ctx, barcode)
}

// ByName busca por nombre (búsqueda difusa del upstream) y devuelve solo el
// primer resultado; el ranking es responsabilidad del upstream.
func (uc *EnrichUseCase) ByName(ctx context.Context, query string) (*dto.ExternalProduct, error) {
	return uc.lookup.SearchByName(ctx, query)
}

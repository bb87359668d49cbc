package ports

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/application/dto"
)

// ProductLookup puerto de consulta de productos en la base de datos externa
// de alimentos. Ambas operaciones son de solo lectura, sin estado compartido
// y seguras de invocar concurrentemente.
//
// Contrato de errores: domain.ErrNotFound cuando el upstream no conoce el
// producto (resultado válido, no un fallo); un error que envuelve
// domain.ErrUpstream ante fallos de transporte, timeout o estado HTTP no
// exitoso. Ninguna operación reintenta.
type ProductLookup interface {
	FetchByBarcode(ctx context.Context, barcode string) (*dto.ExternalProduct, error)
	SearchByName(ctx context.Context, query string) (*dto.ExternalProduct, error)
}

package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/ports"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa ProductLookup.
var _ ports.ProductLookup = (*Client)(nil)

// DefaultBaseURL instancia pública de OpenFoodFacts.
const DefaultBaseURL = "https://world.openfoodfacts.org"

// DefaultTimeout cota por llamada al upstream; superarla es indistinguible de
// un fallo de transporte.
const DefaultTimeout = 6 * time.Second

// Client adaptador HTTP para la API pública de OpenFoodFacts.
// Usa net/http de la librería estándar; no requiere SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL vacío usa la instancia pública;
// timeout <= 0 usa DefaultTimeout. No hay reintentos: un fallo del upstream
// se propaga de inmediato y la política de reintento queda en el llamador.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// productEnvelope respuesta de /api/v2/product/{code}.json.
// status == 1 significa producto conocido; cualquier otro valor es "no existe".
type productEnvelope struct {
	Status  int            `json:"status"`
	Product map[string]any `json:"product"`
}

// searchEnvelope respuesta de /cgi/search.pl.
type searchEnvelope struct {
	Products []map[string]any `json:"products"`
}

// FetchByBarcode consulta el producto por código de barras exacto.
// Devuelve domain.ErrNotFound si el upstream responde con status distinto de 1
// (resultado válido, no un fallo).
func (c *Client) FetchByBarcode(ctx context.Context, barcode string) (*dto.ExternalProduct, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(barcode))
	var env productEnvelope
	if err := c.getJSON(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	if env.Status != 1 {
		return nil, domain.ErrNotFound
	}
	p := Normalize(env.Product)
	return &p, nil
}

// SearchByName lanza la búsqueda difusa del upstream pidiendo exactamente una
// página de tamaño uno y devuelve el primer resultado, o domain.ErrNotFound si
// la lista viene vacía.
func (c *Client) SearchByName(ctx context.Context, query string) (*dto.ExternalProduct, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "1")
	endpoint := fmt.Sprintf("%s/cgi/search.pl?%s", c.baseURL, params.Encode())

	var env searchEnvelope
	if err := c.getJSON(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	if len(env.Products) == 0 {
		return nil, domain.ErrNotFound
	}
	p := Normalize(env.Products[0])
	return &p, nil
}

// getJSON ejecuta un GET y decodifica la respuesta JSON en out. Todo fallo de
// transporte, timeout, estado HTTP no exitoso o cuerpo indecodificable
// envuelve domain.ErrUpstream para que el llamador lo distinga de ErrNotFound.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: construir petición: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", endpoint).Msg("openfoodfacts: fallo de transporte")
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Str("url", endpoint).Msg("openfoodfacts: estado no exitoso")
		return fmt.Errorf("%w: estado HTTP %d", domain.ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrUpstream, err)
	}
	return nil
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/despensa-api/pkg/config"
)

// Errores sentinela que el punto de entrada traduce a códigos de salida.
var (
	errHandled = errors.New("resultado manejado")
	errNetwork = errors.New("fallo de red")
)

// apiClient cliente HTTP mínimo del contrato de la API. Solo conoce el wire
// contract; no comparte código con el servidor más allá de los DTOs.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient() *apiClient {
	base := "http://127.0.0.1:5000"
	if cfg, err := config.Load(); err == nil {
		base = cfg.CLI.BaseURL
	}
	return &apiClient{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// do ejecuta la petición y devuelve estado y cuerpo.
// Todo fallo de transporte envuelve errNetwork (salida 2).
func (c *apiClient) do(method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("serializar petición: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("construir petición: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", errNetwork, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", errNetwork, err)
	}
	return resp.StatusCode, data, nil
}

// unexpectedStatus estados que el comando no maneja explícitamente (errores
// de servidor incluidos) cuentan como fallo de la capa de red, igual que en el
// contrato de salida: el comando no produce salida parcial.
func unexpectedStatus(status int, body []byte) error {
	return fmt.Errorf("%w: la API respondió %d: %s", errNetwork, status, apiError(body))
}

// apiError extrae el mensaje {"error": ...} o devuelve el cuerpo crudo.
func apiError(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}

// prettyJSON reindenta el cuerpo para imprimirlo.
func prettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execCLI ejecuta el comando raíz con los argumentos dados contra la API en
// API_BASE_URL y devuelve la salida y el error final.
func execCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func startAPIStub(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("API_BASE_URL", srv.URL)
	return srv
}

func TestList_RenderizaTabla(t *testing.T) {
	startAPIStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/inventory", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Soda","brand":"Acme","barcode":null,"price":1.99,"stock":20,"ingredients":null}]`))
	}))

	out, err := execCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "#  1 | Soda (Acme) | $1.99 | stock=20")
}

func TestGet_NoEncontradoSale1(t *testing.T) {
	startAPIStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	}))

	out, err := execCLI(t, "get", "99")
	assert.Contains(t, out, "Not found")
	assert.ErrorIs(t, err, errHandled)
	assert.Equal(t, exitHandled, exitCode(err))
}

func TestAdd_EnviaElPayloadYMuestraCreated(t *testing.T) {
	var gotBody map[string]any
	startAPIStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"name":"Soda","brand":"Acme","barcode":"123","price":1.99,"stock":20,"ingredients":null}`))
	}))

	out, err := execCLI(t, "add", "--name", "Soda", "--brand", "Acme",
		"--price", "1.99", "--stock", "20", "--barcode", "123")
	require.NoError(t, err)

	assert.Equal(t, "Soda", gotBody["name"])
	assert.Equal(t, "Acme", gotBody["brand"])
	assert.Equal(t, 1.99, gotBody["price"], "el precio viaja como número JSON")
	assert.Equal(t, float64(20), gotBody["stock"])
	assert.Equal(t, "123", gotBody["barcode"])
	assert.Contains(t, out, "Created:")
}

func TestAdd_SinFlagsRequeridosSale1(t *testing.T) {
	_, err := execCLI(t, "add", "--name", "Soda")
	require.Error(t, err)
	assert.Equal(t, exitHandled, exitCode(err))
}

func TestUpdate_SoloEnviaFlagsPresentes(t *testing.T) {
	var gotBody map[string]any
	startAPIStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/inventory/1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":1,"name":"Soda","brand":"Acme","barcode":null,"price":2.49,"stock":15,"ingredients":null}`))
	}))

	out, err := execCLI(t, "update", "1", "--price", "2.49", "--stock", "15")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"price": 2.49, "stock": float64(15)}, gotBody,
		"los flags no usados no viajan en el patch")
	assert.Contains(t, out, "Updated:")
}

func TestDelete_Eliminado(t *testing.T) {
	startAPIStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	out, err := execCLI(t, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")
}

func TestEnrich_SinProductoSale1(t *testing.T) {
	startAPIStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/enrich/barcode/000", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"No product found for barcode"}`))
	}))

	out, err := execCLI(t, "enrich", "--barcode", "000")
	assert.Contains(t, out, "No product found")
	assert.Equal(t, exitHandled, exitCode(err))
}

func TestEnrich_BarcodeYNameSonExcluyentes(t *testing.T) {
	_, err := execCLI(t, "enrich", "--barcode", "123", "--name", "soda")
	require.Error(t, err)
	assert.Equal(t, exitHandled, exitCode(err))
}

func TestFalloDeRed_Sale2(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nadie escucha ya en esa dirección
	t.Setenv("API_BASE_URL", srv.URL)

	_, err := execCLI(t, "list")
	assert.ErrorIs(t, err, errNetwork)
	assert.Equal(t, exitNetwork, exitCode(err))
}

func TestErrorDeServidor_Sale2(t *testing.T) {
	// La API respondiendo 5xx cuenta como fallo de la capa de red: el comando
	// no produce salida parcial.
	startAPIStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"Upstream lookup failed"}`))
	}))

	_, err := execCLI(t, "enrich", "--name", "soda")
	assert.ErrorIs(t, err, errNetwork)
	assert.Equal(t, exitNetwork, exitCode(err))
}

func TestExitCode_Contrato(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitHandled, exitCode(errHandled))
	assert.Equal(t, exitNetwork, exitCode(errNetwork))
}

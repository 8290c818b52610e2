package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/inventario-api/internal/http"
	handler "github.com/rogerio-castellano/inventario-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventario-api/internal/http/rate_limiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootAndHealth(t *testing.T) {
	r := newRouter(api.Options{})

	w := doJSON(r, http.MethodGet, "/api/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	msg, err := decode[handler.MessageResponse](w)
	require.NoError(t, err)
	assert.Equal(t, "API de Gestión de Inventario", msg.Message)

	w = doJSON(r, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	r := newRouter(api.Options{CORSOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/productos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/productos", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	r := newRouter(api.Options{Limiter: rl.NewVisitors(0.001, 2)})

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/api/", "", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/api/", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(r, http.MethodGet, "/api/", "", nil).Code)

	// Health checks are not throttled.
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/healthz", "", nil).Code)
}

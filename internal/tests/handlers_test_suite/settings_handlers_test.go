package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/inventario-api/internal/apierror"
	api "github.com/rogerio-castellano/inventario-api/internal/http"
	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigurationHandler_CreatesDefaults(t *testing.T) {
	t.Cleanup(clearConfiguration)
	r := newRouter(api.Options{})

	w := doJSON(r, http.MethodGet, "/api/configuracion", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first, err := decode[models.Configuration](w)
	require.NoError(t, err)
	assert.Equal(t, 10, first.LowStockThreshold)
	assert.Equal(t, 2, first.ExpirationMonths)

	w = doJSON(r, http.MethodGet, "/api/configuracion", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	second, err := decode[models.Configuration](w)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, configRepo.Count())
}

func TestUpdateConfigurationHandler(t *testing.T) {
	t.Cleanup(clearConfiguration)
	r := newRouter(api.Options{})

	t.Run("Empty patch", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/configuracion", "", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp, err := decode[apierror.APIError](w)
		require.NoError(t, err)
		assert.Equal(t, "No hay datos para actualizar", resp.Detail)
		assert.Equal(t, 0, configRepo.Count())
	})

	t.Run("Negative threshold", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/configuracion", "", map[string]any{"stock_bajo_limite": -1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Creates record from defaults", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/configuracion", "", map[string]any{"vencimiento_alerta_meses": 3})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		cfg, err := decode[models.Configuration](w)
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.LowStockThreshold)
		assert.Equal(t, 3, cfg.ExpirationMonths)
	})

	t.Run("Updates existing record", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/configuracion", "", map[string]any{"stock_bajo_limite": 5})
		require.Equal(t, http.StatusOK, w.Code)
		cfg, err := decode[models.Configuration](w)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.LowStockThreshold)
		assert.Equal(t, 3, cfg.ExpirationMonths)
		assert.Equal(t, 1, configRepo.Count())
	})
}

func TestConfiguration_OptionalAuth(t *testing.T) {
	t.Cleanup(clearConfiguration)
	r := newRouter(api.Options{AuthConfiguracion: true})

	w := doJSON(r, http.MethodGet, "/api/configuracion", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPut, "/api/configuracion", "", map[string]any{"stock_bajo_limite": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/configuracion", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

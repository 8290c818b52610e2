package handlers_test_suite

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/inventario-api/internal/apierror"
	api "github.com/rogerio-castellano/inventario-api/internal/http"
	handler "github.com/rogerio-castellano/inventario-api/internal/http/handlers"
	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter(api.Options{})

	w := createProduct(r, map[string]any{
		"codigo":            "ARZ-01",
		"descripcion":       "Arroz largo fino 1kg",
		"stock_actual":      25,
		"precio_venta":      1250.5,
		"fecha_vencimiento": "2025-12-31",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created, err := decode[models.Product](w)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ARZ-01", created.Code)
	assert.Equal(t, models.UnitUnits, created.SaleUnit, "unidad_venta defaults to Unidades")
	assert.Equal(t, 25, created.Stock)
	assert.Equal(t, "1250.5", created.SalePrice.String())
	assert.Nil(t, created.IntakeDate)
	require.NotNil(t, created.ExpirationDate)
	assert.Equal(t, "2025-12-31", created.ExpirationDate.String())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// Round trip through GET.
	w = doJSON(r, http.MethodGet, "/api/productos/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched, err := decode[models.Product](w)
	require.NoError(t, err)
	assert.Equal(t, created.Code, fetched.Code)
	assert.Equal(t, created.Description, fetched.Description)
	assert.True(t, created.SalePrice.Equal(fetched.SalePrice))
	assert.Equal(t, created.ExpirationDate.String(), fetched.ExpirationDate.String())
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter(api.Options{})

	tests := []struct {
		name           string
		payload        any
		expectedFields []string
	}{
		{
			name:           "Missing codigo and descripcion",
			payload:        map[string]any{"stock_actual": 1},
			expectedFields: []string{"codigo", "descripcion"},
		},
		{
			name:           "Negative stock",
			payload:        map[string]any{"codigo": "A", "descripcion": "B", "stock_actual": -1},
			expectedFields: []string{"stock_actual"},
		},
		{
			name:           "Stock beyond integer column",
			payload:        map[string]any{"codigo": "A", "descripcion": "B", "stock_actual": 2147483648},
			expectedFields: []string{"stock_actual"},
		},
		{
			name:           "Negative price",
			payload:        map[string]any{"codigo": "A", "descripcion": "B", "precio_venta": -5},
			expectedFields: []string{"precio_venta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp, err := decode[apierror.ValidationError](w)
			require.NoError(t, err)
			assert.Equal(t, apierror.MsgValidation, resp.Detail)
			for _, field := range tt.expectedFields {
				assert.Contains(t, resp.Fields, field)
			}
		})
	}

	t.Run("Malformed date", func(t *testing.T) {
		w := createProduct(r, `{"codigo":"A","descripcion":"B","fecha_ingreso":"31/12/2025"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		w := createProduct(r, `{"codigo":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductMutations_RequireAuth(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter(api.Options{})

	tests := []struct {
		method string
		path   string
		bearer string
	}{
		{http.MethodPost, "/api/productos", ""},
		{http.MethodPut, "/api/productos/any", ""},
		{http.MethodDelete, "/api/productos/any", ""},
		{http.MethodPost, "/api/productos", "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, tt.bearer, map[string]any{"codigo": "A", "descripcion": "B"})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

			resp, err := decode[apierror.APIError](w)
			require.NoError(t, err)
			assert.Equal(t, apierror.MsgUnauthorized, resp.Detail)
		})
	}

	assert.Empty(t, must(productRepo.All(t.Context())))
}

func TestGetProductsHandler_Pagination(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter(api.Options{})

	for i := range 5 {
		w := createProduct(r, handler.ProductRequest{Code: fmt.Sprintf("P%d", i), Description: fmt.Sprintf("Producto %d", i)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"P0", "P1", "P2", "P3", "P4"}},
		{"?skip=2", []string{"P2", "P3", "P4"}},
		{"?limit=2", []string{"P0", "P1"}},
		{"?skip=1&limit=3", []string{"P1", "P2", "P3"}},
		{"?skip=9", []string{}},
		{"?q=producto%203", []string{"P3"}},
	}
	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, "/api/productos"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			products, err := decode[[]models.Product](w)
			require.NoError(t, err)
			codes := []string{}
			for _, p := range products {
				codes = append(codes, p.Code)
			}
			assert.Equal(t, tt.want, codes)
		})
	}

	for _, bad := range []string{"?skip=-1", "?limit=0", "?limit=3001", "?skip=abc"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, "/api/productos"+bad, "", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter(api.Options{})

	w := createProduct(r, handler.ProductRequest{Code: "LCH-01", Description: "Leche entera", Stock: 12})
	require.Equal(t, http.StatusCreated, w.Code)
	created, err := decode[models.Product](w)
	require.NoError(t, err)

	t.Run("Partial update", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/productos/"+created.ID, token, map[string]any{"stock_actual": 0})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		updated, err := decode[models.Product](w)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Stock)
		assert.Equal(t, "Leche entera", updated.Description)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("Empty patch", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"codigo":null}`} {
			w := doJSON(r, http.MethodPut, "/api/productos/"+created.ID, token, body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp, err := decode[apierror.APIError](w)
			require.NoError(t, err)
			assert.Equal(t, "No hay datos para actualizar", resp.Detail)
		}
	})

	t.Run("Stock beyond integer column", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/productos/"+created.ID, token, map[string]any{"stock_actual": 2147483648})
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp, err := decode[apierror.ValidationError](w)
		require.NoError(t, err)
		assert.Contains(t, resp.Fields, "stock_actual")
	})

	t.Run("Unknown product", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/api/productos/missing", token, map[string]any{"stock_actual": 1})
		require.Equal(t, http.StatusNotFound, w.Code)

		resp, err := decode[apierror.APIError](w)
		require.NoError(t, err)
		assert.Equal(t, "Producto no encontrado", resp.Detail)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter(api.Options{})

	w := createProduct(r, handler.ProductRequest{Code: "X", Description: "Borrar"})
	require.Equal(t, http.StatusCreated, w.Code)
	created, err := decode[models.Product](w)
	require.NoError(t, err)

	w = doJSON(r, http.MethodDelete, "/api/productos/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	msg, err := decode[handler.MessageResponse](w)
	require.NoError(t, err)
	assert.Equal(t, "Producto eliminado exitosamente", msg.Message)

	w = doJSON(r, http.MethodGet, "/api/productos/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/productos/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

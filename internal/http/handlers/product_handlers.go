package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventario-api/internal/apierror"
	"github.com/rogerio-castellano/inventario-api/internal/models"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the inventory
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} apierror.ValidationError
// @Failure 401 {object} apierror.APIError
// @Router /api/productos [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !bindAndValidate(w, r, &req) {
		return
	}

	saleUnit := req.SaleUnit
	if saleUnit == "" {
		saleUnit = models.UnitUnits
	}
	now := h.now()
	product := models.Product{
		ID:             uuid.NewString(),
		Code:           req.Code,
		Description:    req.Description,
		SaleUnit:       saleUnit,
		Stock:          req.Stock,
		SalePrice:      req.SalePrice,
		IntakeDate:     req.IntakeDate,
		ExpirationDate: req.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := h.products.Create(r.Context(), product)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List products
// @Description Products in insertion order. q filters by codigo or descripcion.
// @Tags productos
// @Produce json
// @Param skip query int false "Records to skip" default(0) minimum(0)
// @Param limit query int false "Maximum records" default(1000) minimum(1) maximum(3000)
// @Param q query string false "Case-insensitive search"
// @Success 200 {array} models.Product
// @Failure 400 {object} apierror.ValidationError
// @Router /api/productos [get]
func (h *Handler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter, problems := pagination(r)
	if len(problems) > 0 {
		writeJSON(w, http.StatusBadRequest, apierror.NewValidation(problems))
		return
	}

	products, err := h.products.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags productos
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} apierror.APIError
// @Router /api/productos/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Only the supplied fields change.
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.ProductPatch true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {object} apierror.APIError
// @Failure 401 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/productos/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.ProductPatch
	if !bindAndValidate(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		writeServiceError(w, r, models.ErrEmptyPatch)
		return
	}

	updated, err := h.products.Update(r.Context(), chi.URLParam(r, "id"), patch, h.now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/productos/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Producto eliminado exitosamente"})
}

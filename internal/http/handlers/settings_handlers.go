package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

// GetConfigurationHandler godoc
// @Summary Alert thresholds
// @Description Created with defaults on first access.
// @Tags configuracion
// @Produce json
// @Success 200 {object} models.Configuration
// @Router /api/configuracion [get]
func (h *Handler) GetConfigurationHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settings.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// UpdateConfigurationHandler godoc
// @Summary Update alert thresholds
// @Tags configuracion
// @Accept json
// @Produce json
// @Param configuration body models.ConfigurationPatch true "Fields to change"
// @Success 200 {object} models.Configuration
// @Failure 400 {object} apierror.APIError
// @Router /api/configuracion [put]
func (h *Handler) UpdateConfigurationHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.ConfigurationPatch
	if !bindAndValidate(w, r, &patch) {
		return
	}

	cfg, err := h.settings.Update(r.Context(), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

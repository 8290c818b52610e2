package handlers

import "net/http"

// RootHandler godoc
// @Summary API banner
// @Tags meta
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/ [get]
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "API de Gestión de Inventario"})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

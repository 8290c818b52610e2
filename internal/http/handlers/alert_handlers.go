package handlers

import "net/http"

// GetAlertsHandler godoc
// @Summary Current stock and expiration alerts
// @Description Derived on every call from the products and the configuration.
// @Tags alertas
// @Produce json
// @Success 200 {array} models.Alert
// @Router /api/alertas [get]
func (h *Handler) GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.alerts.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetAlertSummaryHandler godoc
// @Summary Alert counts per kind
// @Tags alertas
// @Produce json
// @Success 200 {object} alerts.Summary
// @Router /api/alertas/resumen [get]
func (h *Handler) GetAlertSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := h.alerts.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

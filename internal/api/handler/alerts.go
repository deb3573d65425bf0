package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/comebackscout/comeback-scout/internal/api/respond"
	"github.com/comebackscout/comeback-scout/internal/cache"
	"github.com/comebackscout/comeback-scout/internal/models"
	"github.com/comebackscout/comeback-scout/internal/store"
)

const alertsCacheKey = "alerts:list"

// GetAlerts returns comeback alerts, newest first.
// @Summary List comeback alerts
// @Description Returns up to 50 alerts ordered newest-first.
// @Tags alerts
// @Produce json
// @Success 200 {array} models.Alert
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/alerts [get]
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	if data, etag, ok := h.cache.Get(alertsCacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLAlerts, true)
		return
	}

	alerts, err := h.alerts.List(r.Context())
	if err != nil {
		h.logger.Error("list alerts failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to load alerts")
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	data, err := json.Marshal(alerts)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode alerts")
		return
	}
	etag := h.cache.Set(alertsCacheKey, data, cache.TTLAlerts)
	respond.WriteJSON(w, data, etag, cache.TTLAlerts, false)
}

// MarkAlertRead flags an alert as read.
// @Summary Mark alert read
// @Tags alerts
// @Produce json
// @Param alertID path string true "Alert ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/alerts/mark-read/{alertID} [post]
func (h *Handler) MarkAlertRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "alertID")
	if err := h.alerts.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrAlertNotFound) {
			respond.WriteError(w, http.StatusNotFound, "ALERT_NOT_FOUND", "Alert not found")
			return
		}
		h.logger.Error("mark alert read failed", "alert_id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to update alert")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]bool{"success": true})
}

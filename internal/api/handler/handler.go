// Package handler provides HTTP handlers for all API endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/comebackscout/comeback-scout/internal/api/respond"
	"github.com/comebackscout/comeback-scout/internal/cache"
	"github.com/comebackscout/comeback-scout/internal/config"
	"github.com/comebackscout/comeback-scout/internal/models"
)

// MatchSource supplies the live-match slate.
type MatchSource interface {
	Snapshot() []models.Match
	Match(id string) (models.Match, error)
	Superteams() []models.Superteam
}

// AlertStore persists and lists comeback alerts.
type AlertStore interface {
	InsertIfAbsent(ctx context.Context, alert models.Alert) (bool, error)
	List(ctx context.Context) ([]models.Alert, error)
	MarkRead(ctx context.Context, id string) error
}

// Pinger verifies database connectivity for the health endpoint.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	matches MatchSource
	alerts  AlertStore
	db      Pinger
	cache   *cache.Cache
	cfg     *config.Config
	logger  *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(matches MatchSource, alerts AlertStore, db Pinger, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		matches: matches,
		alerts:  alerts,
		db:      db,
		cache:   c,
		cfg:     cfg,
		logger:  logger,
	}
}

// Root serves API info at /api/.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/ [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Comeback Scout API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/comebackscout/comeback-scout/internal/api/respond"
	"github.com/comebackscout/comeback-scout/internal/comeback"
	"github.com/comebackscout/comeback-scout/internal/engine"
)

// GetLiveMatches returns the current live-match slate.
// @Summary Live matches
// @Description Returns all live matches with comeback evaluations.
// @Tags matches
// @Produce json
// @Success 200 {array} models.Match
// @Router /api/matches/live [get]
func (h *Handler) GetLiveMatches(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, h.matches.Snapshot())
}

// GetMatch returns one match by ID.
// @Summary Match by ID
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/matches/{matchID} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "matchID")
	m, err := h.matches.Match(id)
	if err != nil {
		if errors.Is(err, engine.ErrMatchNotFound) {
			respond.WriteError(w, http.StatusNotFound, "MATCH_NOT_FOUND", "Match not found")
			return
		}
		h.logger.Error("get match failed", "match_id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to load match")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// CheckComebacks evaluates the slate and creates alerts for comeback
// scenarios above the alert threshold.
// @Summary Trigger comeback recomputation
// @Description Evaluates live matches and creates alerts for comeback scenarios with probability above 60.
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/matches/check-comebacks [post]
func (h *Handler) CheckComebacks(w http.ResponseWriter, r *http.Request) {
	created, err := comeback.Check(r.Context(), h.matches, h.alerts, h.logger)
	if err != nil {
		h.logger.Error("comeback check failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to create alerts")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]int{"alerts_created": created})
}

// GetSuperteams returns the monitored-club registry.
// @Summary Monitored superteams
// @Tags matches
// @Produce json
// @Success 200 {array} models.Superteam
// @Router /api/superteams [get]
func (h *Handler) GetSuperteams(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, h.matches.Superteams())
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/boxscore-data/internal/api/respond"
	"github.com/courtside/boxscore-data/internal/cache"
)

// GetPlayerSummary returns a player's career game log with shot charts,
// ordered ascending by game date.
//
// Failures — malformed id, unknown player, storage errors — are reported in
// the body as {"status":"error","reason":...} on a 200 response.
// @Summary Get player summary
// @Description Returns the player's name and one record per game played, each with the full stat line, the game date, and a shot chart. Games are ordered ascending by date. Errors are reported in the body with status "error".
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} summary.Payload
// @Router /players/{playerID}/summary [get]
func (h *Handler) GetPlayerSummary(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "playerID")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respond.WriteErrorPayload(w, fmt.Sprintf("player id must be an integer, got %q", idStr))
		return
	}

	cacheKey := fmt.Sprintf("summary:%d", id)
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLSummary, true)
		return
	}

	payload, err := h.summaries.PlayerSummary(r.Context(), id)
	if err != nil {
		respond.WriteErrorPayload(w, err.Error())
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		respond.WriteErrorPayload(w, err.Error())
		return
	}

	etag := h.cache.Set(cacheKey, data, cache.TTLSummary)
	respond.WriteJSON(w, data, etag, cache.TTLSummary, false)
}

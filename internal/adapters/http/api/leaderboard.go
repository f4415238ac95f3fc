package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/paddock/internal/domain/types"
)

// LeaderboardDependencies defines the interface for leaderboard operations
type LeaderboardDependencies interface {
	Leaderboard(ctx context.Context, dimension string, limit int) ([]Entry, error)
	Leaders(ctx context.Context, dimension string) (types.Leaders, error)
}

// LeaderboardHandler handles leaderboard requests
type LeaderboardHandler struct {
	deps     LeaderboardDependencies
	maxLimit int
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(deps LeaderboardDependencies, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetLeaderboard handles GET /leaderboard/{dimension}?limit=N requests.
// Without limit the service default applies.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	n := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		n, err = strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if h.maxLimit > 0 && n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrLimitExceeded))
			return
		}
	}
	entries, err := h.deps.Leaderboard(r.Context(), r.PathValue("dimension"), n)
	if err != nil {
		writeServiceError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleGetLeaders handles GET /leaders/{dimension} requests.
func (h *LeaderboardHandler) HandleGetLeaders(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.deps.Leaders(r.Context(), r.PathValue("dimension"))
	if err != nil {
		writeServiceError(r.Context(), w, "api.get_leaders", err)
		return
	}
	writeJSON(w, http.StatusOK, leaders)
}

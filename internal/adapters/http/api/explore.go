package api

import (
	"context"
	"net/http"

	"github.com/okian/paddock/internal/domain/types"
)

// ExploreDependencies defines the interface for the map and timeline views.
type ExploreDependencies interface {
	MapPoints(ctx context.Context) ([]types.MapPoint, error)
	Timeline(ctx context.Context) ([]types.TimelineEvent, error)
}

// ExploreHandler serves the map and timeline.
type ExploreHandler struct {
	deps ExploreDependencies
}

// NewExploreHandler creates a new explore handler.
func NewExploreHandler(deps ExploreDependencies) *ExploreHandler {
	return &ExploreHandler{deps: deps}
}

// HandleGetMap handles GET /map requests.
func (h *ExploreHandler) HandleGetMap(w http.ResponseWriter, r *http.Request) {
	points, err := h.deps.MapPoints(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, "api.get_map", err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// HandleGetTimeline handles GET /timeline requests.
func (h *ExploreHandler) HandleGetTimeline(w http.ResponseWriter, r *http.Request) {
	events, err := h.deps.Timeline(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, "api.get_timeline", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

package api

import (
	"context"
	"net/http"

	"github.com/okian/paddock/internal/domain/types"
)

// DrilldownDependencies defines the interface for per-entity lookups.
type DrilldownDependencies interface {
	Entities(ctx context.Context, dimension string) ([]string, error)
	Wins(ctx context.Context, dimension, name string) (types.Wins, error)
}

// DrilldownHandler handles winner and team drill-down requests.
type DrilldownHandler struct {
	deps DrilldownDependencies
}

// NewDrilldownHandler creates a new drill-down handler.
func NewDrilldownHandler(deps DrilldownDependencies) *DrilldownHandler {
	return &DrilldownHandler{deps: deps}
}

// HandleGetEntities handles GET /entities/{dimension} requests.
func (h *DrilldownHandler) HandleGetEntities(w http.ResponseWriter, r *http.Request) {
	names, err := h.deps.Entities(r.Context(), r.PathValue("dimension"))
	if err != nil {
		writeServiceError(r.Context(), w, "api.get_entities", err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// HandleGetWins handles GET /wins/{dimension}/{name} requests. Unknown
// names answer 404 with suggestions.
func (h *DrilldownHandler) HandleGetWins(w http.ResponseWriter, r *http.Request) {
	wins, err := h.deps.Wins(r.Context(), r.PathValue("dimension"), r.PathValue("name"))
	if err != nil {
		writeServiceError(r.Context(), w, "api.get_wins", err)
		return
	}
	writeJSON(w, http.StatusOK, wins)
}

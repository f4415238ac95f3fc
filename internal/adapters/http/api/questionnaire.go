package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/paddock/internal/domain/types"
)

// QuestionnaireDependencies defines the interface for the team questionnaire.
type QuestionnaireDependencies interface {
	Questionnaire(ctx context.Context) []types.QuestionnaireQuestion
	Recommend(ctx context.Context, answers []string) (types.Recommendation, error)
}

// recommendRequest mirrors the OpenAPI schema for POST /questionnaire.
type recommendRequest struct {
	Answers []string `json:"answers"`
}

// QuestionnaireHandler handles questionnaire requests.
type QuestionnaireHandler struct {
	deps QuestionnaireDependencies
}

// NewQuestionnaireHandler creates a new questionnaire handler.
func NewQuestionnaireHandler(deps QuestionnaireDependencies) *QuestionnaireHandler {
	return &QuestionnaireHandler{deps: deps}
}

// HandleGet handles GET /questionnaire requests.
func (h *QuestionnaireHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Questionnaire(r.Context()))
}

// HandlePost handles POST /questionnaire requests.
func (h *QuestionnaireHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommend_team"
	var req recommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing answers")))
		return
	}
	rec, err := h.deps.Recommend(r.Context(), req.Answers)
	if err != nil {
		writeServiceError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

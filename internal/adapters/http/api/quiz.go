package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/paddock/internal/domain/types"
)

// QuizDependencies defines the interface for quiz sessions.
type QuizDependencies interface {
	StartQuiz(ctx context.Context) (types.QuizSession, error)
	Quiz(ctx context.Context, id string) (types.QuizSession, error)
	AnswerQuiz(ctx context.Context, id, option string) (types.QuizSession, error)
	NextQuestion(ctx context.Context, id string) (types.QuizSession, error)
	EndQuiz(ctx context.Context, id string) error
}

// answerRequest mirrors the OpenAPI schema for POST /quiz/{id}/answer.
type answerRequest struct {
	Option string `json:"option"`
}

func (a answerRequest) validate() error {
	if strings.TrimSpace(a.Option) == "" {
		return errors.New("missing option")
	}
	return nil
}

// QuizHandler handles quiz session requests.
type QuizHandler struct {
	deps QuizDependencies
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(deps QuizDependencies) *QuizHandler {
	return &QuizHandler{deps: deps}
}

// HandleCreate handles POST /quiz requests.
func (h *QuizHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.StartQuiz(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, "api.create_quiz", err)
		return
	}
	w.Header().Set("Location", "/quiz/"+s.ID)
	writeJSON(w, http.StatusCreated, s)
}

// HandleGet handles GET /quiz/{id} requests.
func (h *QuizHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Quiz(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), w, "api.get_quiz", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// HandleAnswer handles POST /quiz/{id}/answer requests.
func (h *QuizHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	const op = "api.answer_quiz"
	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	s, err := h.deps.AnswerQuiz(r.Context(), r.PathValue("id"), req.Option)
	if err != nil {
		writeServiceError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// HandleDelete handles DELETE /quiz/{id} requests.
func (h *QuizHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.EndQuiz(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(r.Context(), w, "api.end_quiz", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleNext handles POST /quiz/{id}/next requests.
func (h *QuizHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.NextQuestion(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), w, "api.next_question", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/paddock/internal/app"
	"github.com/okian/paddock/internal/domain/types"
	"github.com/okian/paddock/pkg/logger"
	"github.com/okian/paddock/pkg/metrics"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 16

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	BirthdayDependencies
	LeaderboardDependencies
	ExploreDependencies
	DrilldownDependencies
	QuizDependencies
	QuestionnaireDependencies
}

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
	birthdayHandler      *BirthdayHandler
	leaderboardHandler   *LeaderboardHandler
	exploreHandler       *ExploreHandler
	drilldownHandler     *DrilldownHandler
	quizHandler          *QuizHandler
	questionnaireHandler *QuestionnaireHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// leaderboard length clients may ask for.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:        NewHealthHandler(),
		statsHandler:         NewStatsHandler(statsProvider),
		birthdayHandler:      NewBirthdayHandler(deps),
		leaderboardHandler:   NewLeaderboardHandler(deps, maxLimit),
		exploreHandler:       NewExploreHandler(deps),
		drilldownHandler:     NewDrilldownHandler(deps),
		quizHandler:          NewQuizHandler(deps),
		questionnaireHandler: NewQuestionnaireHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /birthday", MetricsMiddleware(s.birthdayHandler.HandleGetBirthday, "birthday"))
	mux.HandleFunc("GET /months", MetricsMiddleware(s.birthdayHandler.HandleGetMonths, "months"))

	mux.HandleFunc("GET /leaderboard/{dimension}", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("GET /leaders/{dimension}", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaders, "leaders"))

	mux.HandleFunc("GET /map", MetricsMiddleware(s.exploreHandler.HandleGetMap, "map"))
	mux.HandleFunc("GET /timeline", MetricsMiddleware(s.exploreHandler.HandleGetTimeline, "timeline"))

	mux.HandleFunc("GET /entities/{dimension}", MetricsMiddleware(s.drilldownHandler.HandleGetEntities, "entities"))
	mux.HandleFunc("GET /wins/{dimension}/{name}", MetricsMiddleware(s.drilldownHandler.HandleGetWins, "wins"))

	mux.HandleFunc("POST /quiz", MetricsMiddleware(s.quizHandler.HandleCreate, "quiz_create"))
	mux.HandleFunc("GET /quiz/{id}", MetricsMiddleware(s.quizHandler.HandleGet, "quiz_get"))
	mux.HandleFunc("DELETE /quiz/{id}", MetricsMiddleware(s.quizHandler.HandleDelete, "quiz_delete"))
	mux.HandleFunc("POST /quiz/{id}/answer", MetricsMiddleware(s.quizHandler.HandleAnswer, "quiz_answer"))
	mux.HandleFunc("POST /quiz/{id}/next", MetricsMiddleware(s.quizHandler.HandleNext, "quiz_next"))

	mux.HandleFunc("GET /questionnaire", MetricsMiddleware(s.questionnaireHandler.HandleGet, "questionnaire"))
	mux.HandleFunc("POST /questionnaire", MetricsMiddleware(s.questionnaireHandler.HandlePost, "questionnaire_answer"))
}

type errorResponse struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates a service error kind into a status code.
// Unknown drill-down names carry their suggestions.
func writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	var unknown *service.UnknownEntityError
	switch {
	case errors.As(err, &unknown):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Code:        "not_found",
			Message:     Wrap(op, err).Error(),
			Suggestions: unknown.Suggestions,
		})
	case errors.Is(err, service.ErrBadInput):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", Wrap(op, err))
	default:
		metrics.RecordErrorByComponent("api", op)
		logger.Get().Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

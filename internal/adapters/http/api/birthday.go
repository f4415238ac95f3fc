package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/paddock/internal/domain/types"
)

// BirthdayDependencies defines the interface for birthday lookups.
type BirthdayDependencies interface {
	Birthday(ctx context.Context, day int, month string) (types.Birthday, error)
	MonthNames(ctx context.Context) ([]string, error)
}

// BirthdayHandler handles birthday requests.
type BirthdayHandler struct {
	deps BirthdayDependencies
}

// NewBirthdayHandler creates a new birthday handler.
func NewBirthdayHandler(deps BirthdayDependencies) *BirthdayHandler {
	return &BirthdayHandler{deps: deps}
}

// HandleGetBirthday handles GET /birthday?day=D&month=M requests.
func (h *BirthdayHandler) HandleGetBirthday(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_birthday"
	q := r.URL.Query()
	day, err := strconv.Atoi(q.Get("day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("day must be a number")))
		return
	}
	month := strings.TrimSpace(q.Get("month"))
	if month == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing month")))
		return
	}
	b, err := h.deps.Birthday(r.Context(), day, month)
	if err != nil {
		writeServiceError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// HandleGetMonths handles GET /months requests.
func (h *BirthdayHandler) HandleGetMonths(w http.ResponseWriter, r *http.Request) {
	names, err := h.deps.MonthNames(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, "api.get_months", err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

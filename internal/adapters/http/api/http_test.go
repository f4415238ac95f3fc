package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/okian/paddock/internal/adapters/http/api"
	service "github.com/okian/paddock/internal/app"
	"github.com/okian/paddock/internal/domain/types"
	"github.com/okian/paddock/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// mockDependencies records the arguments it was called with and replays
// canned answers.
type mockDependencies struct {
	err error

	day        int
	month      string
	dimension  string
	limit      int
	name       string
	sessionID  string
	option     string
	answers    []string
	entries    []types.Entry
	unknownErr *service.UnknownEntityError
}

func (m *mockDependencies) Birthday(_ context.Context, day int, month string) (types.Birthday, error) {
	m.day, m.month = day, month
	if m.err != nil {
		return types.Birthday{}, m.err
	}
	return types.Birthday{Day: day, Month: 5, MonthName: "Mayo", Exact: true, Races: []types.Race{{Year: 1950, Winner: "Nino Farina"}}}, nil
}

func (m *mockDependencies) MonthNames(context.Context) ([]string, error) {
	return []string{"Enero", "Febrero"}, m.err
}

func (m *mockDependencies) Leaderboard(_ context.Context, dimension string, limit int) ([]types.Entry, error) {
	m.dimension, m.limit = dimension, limit
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockDependencies) Leaders(_ context.Context, dimension string) (types.Leaders, error) {
	m.dimension = dimension
	if m.err != nil {
		return types.Leaders{}, m.err
	}
	return types.Leaders{Keys: []string{"Juan Manuel Fangio"}, Count: 24, Summary: "Juan Manuel Fangio fue el piloto con más victorias: 24 en total."}, nil
}

func (m *mockDependencies) MapPoints(context.Context) ([]types.MapPoint, error) {
	return []types.MapPoint{{Country: "Mónaco", Races: 2, Geohash: "spv2"}}, m.err
}

func (m *mockDependencies) Timeline(context.Context) ([]types.TimelineEvent, error) {
	return []types.TimelineEvent{{Year: 1950, Text: "primer campeonato"}}, m.err
}

func (m *mockDependencies) Entities(_ context.Context, dimension string) ([]string, error) {
	m.dimension = dimension
	if m.err != nil {
		return nil, m.err
	}
	return []string{"Ferrari", "Maserati"}, nil
}

func (m *mockDependencies) Wins(_ context.Context, dimension, name string) (types.Wins, error) {
	m.dimension, m.name = dimension, name
	if m.unknownErr != nil {
		return types.Wins{}, m.unknownErr
	}
	if m.err != nil {
		return types.Wins{}, m.err
	}
	return types.Wins{Dimension: dimension, Name: name, Count: 1, Races: []types.Race{{Year: 1953}}}, nil
}

func (m *mockDependencies) StartQuiz(context.Context) (types.QuizSession, error) {
	if m.err != nil {
		return types.QuizSession{}, m.err
	}
	return types.QuizSession{ID: "abc", Total: 6, Question: &types.QuizQuestion{Prompt: "q1"}}, nil
}

func (m *mockDependencies) Quiz(_ context.Context, id string) (types.QuizSession, error) {
	m.sessionID = id
	if m.err != nil {
		return types.QuizSession{}, m.err
	}
	return types.QuizSession{ID: id, Total: 6}, nil
}

func (m *mockDependencies) AnswerQuiz(_ context.Context, id, option string) (types.QuizSession, error) {
	m.sessionID, m.option = id, option
	if m.err != nil {
		return types.QuizSession{}, m.err
	}
	return types.QuizSession{ID: id, Answered: true, Correct: true, Score: 1, Answer: option}, nil
}

func (m *mockDependencies) NextQuestion(_ context.Context, id string) (types.QuizSession, error) {
	m.sessionID = id
	if m.err != nil {
		return types.QuizSession{}, m.err
	}
	return types.QuizSession{ID: id, Index: 1}, nil
}

func (m *mockDependencies) EndQuiz(_ context.Context, id string) error {
	m.sessionID = id
	return m.err
}

func (m *mockDependencies) Questionnaire(context.Context) []types.QuestionnaireQuestion {
	return []types.QuestionnaireQuestion{{Prompt: "¿Cuál es tu estilo de conducción?", Options: []string{"a", "b", "c"}}}
}

func (m *mockDependencies) Recommend(_ context.Context, answers []string) (types.Recommendation, error) {
	m.answers = answers
	if m.err != nil {
		return types.Recommendation{}, m.err
	}
	return types.Recommendation{Profile: "agresivo", Team: "Maserati", Message: "¡Tu escudería ideal es Maserati!"}, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps *mockDependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"records": 10}}, 100).Register(context.Background(), mux)
	return mux
}

func serve(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func decodeError(w *httptest.ResponseRecorder) errorBody {
	var body errorBody
	_ = json.NewDecoder(w.Body).Decode(&body)
	return body
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(&mockDependencies{})

		Convey("Then every read route answers", func() {
			for _, target := range []string{
				"/healthz", "/stats", "/birthday?day=13&month=5", "/months",
				"/leaderboard/winner", "/leaders/team", "/map", "/timeline",
				"/entities/team", "/wins/team/Ferrari", "/quiz/abc", "/questionnaire",
			} {
				w := serve(mux, http.MethodGet, target, "")
				So(w.Code, ShouldEqual, http.StatusOK)
			}
		})

		Convey("Then the wrong method is rejected", func() {
			w := serve(mux, http.MethodPost, "/birthday", "")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("Then unknown paths are not found", func() {
			w := serve(mux, http.MethodGet, "/rank/abc", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestBirthdayHandler(t *testing.T) {
	Convey("Given a birthday route", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When day and month are given", func() {
			w := serve(mux, http.MethodGet, "/birthday?day=13&month=Mayo", "")

			Convey("Then they reach the service and the answer is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.day, ShouldEqual, 13)
				So(deps.month, ShouldEqual, "Mayo")
				var b types.Birthday
				So(json.NewDecoder(w.Body).Decode(&b), ShouldBeNil)
				So(b.Exact, ShouldBeTrue)
				So(b.Races[0].Winner, ShouldEqual, "Nino Farina")
			})
		})

		Convey("When day is not a number", func() {
			w := serve(mux, http.MethodGet, "/birthday?day=x&month=5", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w).Code, ShouldEqual, "bad_request")
		})

		Convey("When month is missing", func() {
			w := serve(mux, http.MethodGet, "/birthday?day=1", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the service rejects the date", func() {
			deps.err = fmt.Errorf("%w: day 30 of February", service.ErrBadInput)
			w := serve(mux, http.MethodGet, "/birthday?day=30&month=2", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w).Message, ShouldContainSubstring, "day 30 of February")
		})
	})
}

func TestLeaderboardHandler(t *testing.T) {
	Convey("Given a leaderboard route", t, func() {
		deps := &mockDependencies{entries: []types.Entry{
			{Rank: 1, Key: "Juan Manuel Fangio", Count: 24},
			{Rank: 2, Key: "Alberto Ascari", Count: 13},
		}}
		mux := newMux(deps)

		Convey("When requesting a limit", func() {
			w := serve(mux, http.MethodGet, "/leaderboard/winner?limit=2", "")

			Convey("Then the entries are returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.dimension, ShouldEqual, "winner")
				So(deps.limit, ShouldEqual, 2)
				var entries []types.Entry
				So(json.NewDecoder(w.Body).Decode(&entries), ShouldBeNil)
				So(entries, ShouldResemble, deps.entries)
			})
		})

		Convey("When no limit is given", func() {
			w := serve(mux, http.MethodGet, "/leaderboard/team", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.limit, ShouldEqual, 0)
		})

		Convey("When the limit is invalid", func() {
			for _, limit := range []string{"0", "-1", "abc"} {
				w := serve(mux, http.MethodGet, "/leaderboard/team?limit="+limit, "")
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w).Code, ShouldEqual, "bad_request")
			}
		})

		Convey("When the limit exceeds the maximum", func() {
			w := serve(mux, http.MethodGet, "/leaderboard/team?limit=101", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w).Code, ShouldEqual, "limit_exceeded")
		})

		Convey("When the dimension is unknown", func() {
			deps.err = fmt.Errorf("%w: %w", service.ErrBadInput, service.ErrUnknownDimension)
			w := serve(mux, http.MethodGet, "/leaderboard/circuit", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the service fails", func() {
			deps.err = errors.New("boom")
			w := serve(mux, http.MethodGet, "/leaderboard/team", "")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(decodeError(w).Code, ShouldEqual, "internal_error")
		})

		Convey("When asking for the leaders", func() {
			w := serve(mux, http.MethodGet, "/leaders/winner", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var leaders types.Leaders
			So(json.NewDecoder(w.Body).Decode(&leaders), ShouldBeNil)
			So(leaders.Summary, ShouldStartWith, "Juan Manuel Fangio")
		})
	})
}

func TestDrilldownHandler(t *testing.T) {
	Convey("Given a drill-down route", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When the name is known", func() {
			w := serve(mux, http.MethodGet, "/wins/team/Alfa%20Romeo", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.name, ShouldEqual, "Alfa Romeo")
		})

		Convey("When the name is unknown", func() {
			deps.unknownErr = &service.UnknownEntityError{Dimension: "winner", Name: "Fangio", Suggestions: []string{"Juan Manuel Fangio"}}
			w := serve(mux, http.MethodGet, "/wins/winner/Fangio", "")

			Convey("Then 404 carries suggestions", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				body := decodeError(w)
				So(body.Code, ShouldEqual, "not_found")
				So(body.Suggestions, ShouldResemble, []string{"Juan Manuel Fangio"})
			})
		})

		Convey("When listing entities", func() {
			w := serve(mux, http.MethodGet, "/entities/team", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.dimension, ShouldEqual, "team")
		})
	})
}

func TestQuizHandler(t *testing.T) {
	Convey("Given a quiz route", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When creating a session", func() {
			w := serve(mux, http.MethodPost, "/quiz", "")
			So(w.Code, ShouldEqual, http.StatusCreated)
			So(w.Header().Get("Location"), ShouldEqual, "/quiz/abc")
		})

		Convey("When answering", func() {
			w := serve(mux, http.MethodPost, "/quiz/abc/answer", `{"option":"Juan Manuel Fangio"}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.sessionID, ShouldEqual, "abc")
			So(deps.option, ShouldEqual, "Juan Manuel Fangio")
		})

		Convey("When the answer body is malformed", func() {
			for _, body := range []string{`{`, `{"option":""}`, `{"choice":"a"}`} {
				w := serve(mux, http.MethodPost, "/quiz/abc/answer", body)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			}
		})

		Convey("When the transition is not allowed", func() {
			deps.err = fmt.Errorf("%w: question not answered", service.ErrConflict)
			w := serve(mux, http.MethodPost, "/quiz/abc/next", "")
			So(w.Code, ShouldEqual, http.StatusConflict)
			So(decodeError(w).Code, ShouldEqual, "conflict")
		})

		Convey("When the session is unknown", func() {
			deps.err = fmt.Errorf("%w: session", service.ErrNotFound)
			w := serve(mux, http.MethodGet, "/quiz/missing", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			w = serve(mux, http.MethodDelete, "/quiz/missing", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When ending a session", func() {
			w := serve(mux, http.MethodDelete, "/quiz/abc", "")
			So(w.Code, ShouldEqual, http.StatusNoContent)
			So(w.Body.Len(), ShouldEqual, 0)
			So(deps.sessionID, ShouldEqual, "abc")
		})
	})
}

func TestQuestionnaireHandler(t *testing.T) {
	Convey("Given a questionnaire route", t, func() {
		deps := &mockDependencies{}
		mux := newMux(deps)

		Convey("When answers are posted", func() {
			w := serve(mux, http.MethodPost, "/questionnaire", `{"answers":["a","b","c"]}`)

			Convey("Then the recommendation is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.answers, ShouldResemble, []string{"a", "b", "c"})
				var rec types.Recommendation
				So(json.NewDecoder(w.Body).Decode(&rec), ShouldBeNil)
				So(rec.Team, ShouldEqual, "Maserati")
			})
		})

		Convey("When no answers are posted", func() {
			w := serve(mux, http.MethodPost, "/questionnaire", `{"answers":[]}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the service rejects the answers", func() {
			deps.err = fmt.Errorf("%w: incomplete", service.ErrBadInput)
			w := serve(mux, http.MethodPost, "/questionnaire", `{"answers":["a"]}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestStatsHandler_HandleStats(t *testing.T) {
	Convey("Given a stats handler", t, func() {
		handler := api.NewStatsHandler(&mockStatsProvider{stats: map[string]interface{}{"records": 10, "started": true}})

		Convey("When handling a stats request", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			w := httptest.NewRecorder()
			handler.HandleStats(w, req)

			Convey("Then the stats are encoded as JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var stats map[string]interface{}
				So(json.NewDecoder(w.Body).Decode(&stats), ShouldBeNil)
				So(stats["records"], ShouldEqual, float64(10))
				So(stats["started"], ShouldEqual, true)
			})
		})
	})
}

func TestErrors(t *testing.T) {
	Convey("Given API errors", t, func() {
		cause := errors.New("cause")

		Convey("Then kinds and causes are both reachable", func() {
			err := api.WrapKind("api.op", api.ErrBadRequest, cause)
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.op: bad request: cause")
		})

		Convey("Then NewKind and Wrap format their parts", func() {
			So(api.NewKind("api.op", api.ErrLimitExceeded).Error(), ShouldEqual, "api.op: limit exceeded")
			So(api.Wrap("api.op", cause).Error(), ShouldEqual, "api.op: cause")
			So(api.Wrap("api.op", nil), ShouldBeNil)
		})
	})
}

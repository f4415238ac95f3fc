package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okian/paddock/internal/config"
	"github.com/okian/paddock/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

const fixture = `Year,Grand Prix,Date,Winner,Team
1950,Monaco,21 May 1950,Juan Manuel Fangio,Alfa Romeo
1951,Swiss,27 May 1951,Juan Manuel Fangio,Alfa Romeo
1953,Argentine,18 Jan 1953,Alberto Ascari,Ferrari
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "races.csv")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestNewService(t *testing.T) {
	convey.Convey("Given a configuration", t, func() {
		cfg := config.New()
		cfg.DataPath = writeFixture(t)
		cfg.Locale = config.LocaleEN
		cfg.NearestMode = config.NearestCircular

		convey.Convey("When building the service", func() {
			svc := newService(cfg, logger.Nop())

			convey.Convey("Then every setting reaches it", func() {
				stats := svc.GetStats()
				convey.So(stats["dataPath"], convey.ShouldEqual, cfg.DataPath)
				convey.So(stats["locale"], convey.ShouldEqual, "en")
				convey.So(stats["nearestMode"], convey.ShouldEqual, "circular")
				convey.So(stats["sessionCapacity"], convey.ShouldEqual, cfg.SessionCapacity)
			})
		})
	})
}

func TestNewMux(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		ctx := context.Background()
		cfg := config.New()
		cfg.DataPath = writeFixture(t)
		svc := newService(cfg, logger.Nop())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		mux := newMux(ctx, cfg, svc)
		get := func(target string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			return w
		}

		convey.Convey("Then docs, site and API are all routed", func() {
			for _, target := range []string{"/", "/api-docs", "/openapi.yaml", "/healthz", "/stats", "/timeline"} {
				convey.So(get(target).Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("Then a birthday lookup runs end to end", func() {
			w := get("/birthday?day=21&month=5")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			var body map[string]interface{}
			convey.So(json.NewDecoder(w.Body).Decode(&body), convey.ShouldBeNil)
			convey.So(body["exact"], convey.ShouldEqual, true)
		})

		convey.Convey("Then the leaderboard honours the configured cap", func() {
			w := get("/leaderboard/winner?limit=1000")
			convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
			convey.So(strings.Contains(w.Body.String(), "limit_exceeded"), convey.ShouldBeTrue)
		})

		convey.Convey("Then the quiz can be played over HTTP", func() {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quiz", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusCreated)
			convey.So(get(w.Header().Get("Location")).Code, convey.ShouldEqual, http.StatusOK)
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a configuration pointing at a missing data file", t, func() {
		t.Setenv("PADDOCK_DATA_PATH", filepath.Join(t.TempDir(), "missing.csv"))
		t.Setenv("PADDOCK_ADDR", "127.0.0.1:0")

		convey.Convey("Then run fails before serving", func() {
			err := run(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "failed to start service")
		})
	})

	convey.Convey("Given a valid configuration", t, func() {
		t.Setenv("PADDOCK_DATA_PATH", writeFixture(t))
		t.Setenv("PADDOCK_ADDR", "127.0.0.1:0")

		convey.Convey("Then run returns once the context is cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()
			convey.So(run(ctx), convey.ShouldBeNil)
		})
	})
}

// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/paddock/internal/adapters/repository"
	"github.com/okian/paddock/internal/domain/model"
	"github.com/okian/paddock/internal/domain/phrase"
	"github.com/okian/paddock/internal/domain/query"
	"github.com/okian/paddock/internal/domain/quiz"
	"github.com/okian/paddock/internal/domain/reference"
	"github.com/okian/paddock/pkg/logger"
	"github.com/okian/paddock/pkg/metrics"
)

// Defaults applied by New.
const (
	defaultLeaderboardSize = 5
	defaultMaxLimit        = 100
	defaultSuggestionLimit = 5
	defaultSampleInterval  = 10 * time.Second
)

// Service implements the API dependencies for the race explorer.
type Service struct {
	mu sync.RWMutex

	// Core components
	loader   *repository.Loader
	sessions *repository.SessionStore
	tables   *reference.Tables
	locale   phrase.Locale
	bank     quiz.Bank

	// Dataset, read-only after Start
	records []model.RaceRecord
	rows    int
	dropped int

	// Configuration
	dataPath        string
	localeName      string
	placeholderYear int
	nearestMode     query.DistanceMode
	sessionCapacity int
	leaderboardSize int
	maxLimit        int
	suggestionLimit int
	sampleInterval  time.Duration

	// State
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataPath sets the race table to load on Start.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithLocale sets the language of sentences and reference tables.
func WithLocale(locale string) Option {
	return func(s *Service) {
		if locale != "" {
			s.localeName = locale
		}
	}
}

// WithPlaceholderYear sets the reference year of nearest-race queries.
func WithPlaceholderYear(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.placeholderYear = year
		}
	}
}

// WithNearestMode sets the nearest-race distance measure.
func WithNearestMode(mode string) Option {
	return func(s *Service) {
		switch m := query.DistanceMode(mode); m {
		case query.DistanceLinear, query.DistanceCircular:
			s.nearestMode = m
		}
	}
}

// WithSessionCapacity bounds the number of stored quiz sessions.
func WithSessionCapacity(n int) Option {
	return func(s *Service) {
		s.sessionCapacity = n
	}
}

// WithLeaderboardSize sets the default leaderboard length.
func WithLeaderboardSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.leaderboardSize = n
		}
	}
}

// WithMaxLeaderboardLimit caps the leaderboard length a caller may ask for.
func WithMaxLeaderboardLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithSuggestionLimit caps drill-down suggestions.
func WithSuggestionLimit(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.suggestionLimit = n
		}
	}
}

// WithSampleInterval sets how often system gauges are sampled.
func WithSampleInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sampleInterval = d
		}
	}
}

// WithQuizBank replaces the trivia questions.
func WithQuizBank(bank quiz.Bank) Option {
	return func(s *Service) {
		if len(bank) > 0 {
			s.bank = bank
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		bank:            quiz.DefaultBank(),
		localeName:      reference.LocaleES,
		placeholderYear: query.DefaultPlaceholderYear,
		nearestMode:     query.DistanceLinear,
		sessionCapacity: repository.DefaultSessionCapacity,
		leaderboardSize: defaultLeaderboardSize,
		maxLimit:        defaultMaxLimit,
		suggestionLimit: defaultSuggestionLimit,
		sampleInterval:  defaultSampleInterval,
		stopCh:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset and builds the reference tables. A missing or
// unreadable data file fails Start.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting explorer service...", logger.String("data_path", s.dataPath))

	tables, err := reference.New(s.localeName)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	s.loader = repository.NewLoader(repository.WithLoaderLogger(s.logger))
	ds, err := s.loader.Load(ctx, s.dataPath)
	if err != nil {
		metrics.RecordErrorByComponent("service", "dataset_load")
		return fmt.Errorf("start: %w", err)
	}

	s.tables = tables
	s.locale = phrase.ForLocale(s.localeName)
	s.records = ds.Records
	s.rows = ds.Rows
	s.dropped = ds.Dropped
	s.sessions = repository.NewSessionStore(
		repository.WithCapacity(s.sessionCapacity),
		repository.WithSessionLogger(s.logger),
	)

	s.stopCh = make(chan struct{})
	s.wg.Add(1)
	go s.sampleSystem(s.stopCh)

	s.started = true
	s.logger.Info(ctx, "explorer service started",
		logger.Int("records", len(s.records)),
		logger.Int("dropped", s.dropped),
		logger.String("locale", s.localeName),
		logger.String("nearest_mode", string(s.nearestMode)),
		logger.Int("session_capacity", s.sessionCapacity),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.logger.Info(context.Background(), "stopping explorer service...")
	close(s.stopCh)
	s.started = false
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info(context.Background(), "explorer service stopped")
}

// sampleSystem updates memory, goroutine and GC gauges until stop closes.
func (s *Service) sampleSystem(stop <-chan struct{}) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.sampleInterval)
	defer ticker.Stop()

	var lastGC uint32
	sample := func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		metrics.UpdateSystemMemoryUsage(ms.Alloc)
		metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
		if ms.NumGC != lastGC {
			metrics.RecordSystemGCPauseTime(float64(ms.PauseNs[(ms.NumGC+255)%256]) / 1e6)
			lastGC = ms.NumGC
		}
	}

	sample()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			sample()
		}
	}
}

// state returns the loaded dataset, or ErrNotStarted.
func (s *Service) state() ([]model.RaceRecord, *reference.Tables, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.records, s.tables, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"dataPath":        s.dataPath,
		"locale":          s.localeName,
		"nearestMode":     string(s.nearestMode),
		"placeholderYear": s.placeholderYear,
		"sessionCapacity": s.sessionCapacity,
	}

	if s.started {
		sessions := s.sessions.Size()
		stats["records"] = len(s.records)
		stats["rows"] = s.rows
		stats["dropped"] = s.dropped
		stats["quizSessions"] = sessions
		stats["quizQuestions"] = len(s.bank)

		metrics.UpdateDatasetRecords(len(s.records), s.dropped)
		metrics.UpdateQuizSessionsActive(sessions)
	}

	return stats
}

// Package metrics provides Prometheus metrics for the paddock service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the paddock service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Dataset Metrics
	datasetRecordsLoaded  prometheus.Gauge
	datasetRecordsDropped prometheus.Gauge
	datasetLoadDuration   prometheus.Histogram

	// Query Metrics
	birthdayLookups    *prometheus.CounterVec
	leaderboardQueries *prometheus.CounterVec
	drilldownLookups   *prometheus.CounterVec

	// Quiz and Questionnaire Metrics
	quizSessionsCreated          prometheus.Counter
	quizSessionsActive           prometheus.Gauge
	quizSessionsEvicted          prometheus.Counter
	quizAnswers                  *prometheus.CounterVec
	questionnaireRecommendations *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "paddock",
		subsystem:        "explorer",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// RefreshInterval returns how often system gauges should be sampled.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// name applies the configured metric prefix.
func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	// Dataset
	m.datasetRecordsLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("dataset_records_loaded"),
		Help:        "Number of race records held in memory",
		ConstLabels: labels,
	})

	m.datasetRecordsDropped = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("dataset_records_dropped"),
		Help:        "Number of rows discarded at load because their date did not parse",
		ConstLabels: labels,
	})

	m.datasetLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("dataset_load_duration_milliseconds"),
		Help:        "Dataset load duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	// Queries
	m.birthdayLookups = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("birthday_lookups_total"),
			Help:        "Birthday lookups by outcome (exact or nearest)",
			ConstLabels: labels,
		},
		[]string{"outcome"},
	)

	m.leaderboardQueries = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("leaderboard_queries_total"),
			Help:        "Leaderboard and leader queries by dimension",
			ConstLabels: labels,
		},
		[]string{"dimension"},
	)

	m.drilldownLookups = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("drilldown_lookups_total"),
			Help:        "Drill-down lookups by dimension and outcome",
			ConstLabels: labels,
		},
		[]string{"dimension", "outcome"},
	)

	// Quiz and questionnaire
	m.quizSessionsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("quiz_sessions_created_total"),
		Help:        "Total number of quiz sessions created",
		ConstLabels: labels,
	})

	m.quizSessionsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("quiz_sessions_active"),
		Help:        "Number of quiz sessions held in the session store",
		ConstLabels: labels,
	})

	m.quizSessionsEvicted = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("quiz_sessions_evicted_total"),
		Help:        "Total number of quiz sessions evicted to make room",
		ConstLabels: labels,
	})

	m.quizAnswers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("quiz_answers_total"),
			Help:        "Quiz answers by result (correct or incorrect)",
			ConstLabels: labels,
		},
		[]string{"result"},
	)

	m.questionnaireRecommendations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("questionnaire_recommendations_total"),
			Help:        "Questionnaire recommendations by team",
			ConstLabels: labels,
		},
		[]string{"team"},
	)

	// HTTP
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_requests_total"),
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("http_request_duration_milliseconds"),
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Errors
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_component_total"),
			Help:        "Total number of errors by component",
			ConstLabels: labels,
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        m.name("errors_by_endpoint_total"),
			Help:        "Total number of errors by endpoint",
			ConstLabels: labels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_memory_usage_bytes"),
		Help:        "System memory usage in bytes",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_goroutine_count"),
		Help:        "Number of goroutines",
		ConstLabels: labels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name("system_gc_pause_time_milliseconds"),
		Help:        "GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: labels,
	})
}

// Dataset Metrics Functions.

// UpdateDatasetRecords sets the loaded and dropped record gauges.
func UpdateDatasetRecords(loaded, dropped int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetRecordsLoaded.Set(float64(loaded))
	globalManager.datasetRecordsDropped.Set(float64(dropped))
}

// RecordDatasetLoadDuration records how long the dataset took to load.
func RecordDatasetLoadDuration(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoadDuration.Observe(durationMs)
}

// Query Metrics Functions.

// RecordBirthdayLookup increments the birthday lookup counter for outcome.
func RecordBirthdayLookup(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.birthdayLookups.WithLabelValues(outcome).Inc()
}

// RecordLeaderboardQuery increments the leaderboard counter for dimension.
func RecordLeaderboardQuery(dimension string) {
	if !globalManager.enabled {
		return
	}
	globalManager.leaderboardQueries.WithLabelValues(dimension).Inc()
}

// RecordDrilldownLookup increments the drill-down counter.
func RecordDrilldownLookup(dimension, outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.drilldownLookups.WithLabelValues(dimension, outcome).Inc()
}

// Quiz and Questionnaire Metrics Functions.

// RecordQuizSessionCreated increments the created sessions counter.
func RecordQuizSessionCreated() {
	if !globalManager.enabled {
		return
	}
	globalManager.quizSessionsCreated.Inc()
}

// UpdateQuizSessionsActive sets the number of stored quiz sessions.
func UpdateQuizSessionsActive(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.quizSessionsActive.Set(float64(count))
}

// RecordQuizSessionEvicted increments the evicted sessions counter.
func RecordQuizSessionEvicted() {
	if !globalManager.enabled {
		return
	}
	globalManager.quizSessionsEvicted.Inc()
}

// RecordQuizAnswer increments the answer counter by correctness.
func RecordQuizAnswer(correct bool) {
	if !globalManager.enabled {
		return
	}
	result := "incorrect"
	if correct {
		result = "correct"
	}
	globalManager.quizAnswers.WithLabelValues(result).Inc()
}

// RecordQuestionnaireRecommendation increments the recommendation counter for team.
func RecordQuestionnaireRecommendation(team string) {
	if !globalManager.enabled {
		return
	}
	globalManager.questionnaireRecommendations.WithLabelValues(team).Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// RefreshInterval returns the sampling interval of the global manager.
func RefreshInterval() time.Duration {
	return globalManager.RefreshInterval()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

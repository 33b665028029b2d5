package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"vibr/internal/db"
)

// Provider call outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeError     = "error"
	OutcomeDuplicate = "duplicate"
)

// UnknownCategory is the resolution label for categories outside the phrasebook.
const UnknownCategory = "unknown"

var (
	resolutionDesc = prometheus.NewDesc(
		"vibr_resolutions_total",
		"Total resolutions by category and stage",
		[]string{"category", "stage"},
		nil,
	)

	// resolutions is used when no database is configured.
	resolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vibr_resolutions_total",
		Help: "Total resolutions by category and stage",
	}, []string{"category", "stage"})

	providerCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vibr_provider_calls_total",
		Help: "Total LLM provider calls by outcome",
	}, []string{"provider", "outcome"})

	providerLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vibr_provider_call_duration_seconds",
		Help:    "LLM provider call latency",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"provider"})
)

// StageCollector is a custom Prometheus collector that reads resolution
// counts from the database on each scrape.
type StageCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *StageCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- resolutionDesc
}

// Collect queries the database for all resolution counts and emits them as counters.
func (c *StageCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.db.GetAllStageLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect resolution metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			resolutionDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Category,
			l.Stage,
		)
	}
}

// Recorder provides async resolution recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder. With a nil
// database resolution counts are kept in process.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		if database != nil {
			prometheus.MustRegister(&StageCollector{db: database})
		} else {
			prometheus.MustRegister(resolutions)
		}
		prometheus.MustRegister(providerCalls, providerLatency)
	})
}

// RecordResolution records which stage produced a phrase for a category.
func RecordResolution(category, stage string) {
	if recorder == nil || recorder.db == nil {
		resolutions.WithLabelValues(category, stage).Inc()
		return
	}
	go func() {
		if err := recorder.db.IncrementStageLookup(context.Background(), category, stage); err != nil {
			slog.Error("failed to record resolution", "category", category, "stage", stage, "error", err)
		}
	}()
}

// ObserveProviderCall records the outcome and latency of an LLM call.
func ObserveProviderCall(provider, outcome string, d time.Duration) {
	providerCalls.WithLabelValues(provider, outcome).Inc()
	providerLatency.WithLabelValues(provider).Observe(d.Seconds())
}

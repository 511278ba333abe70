// Package metrics exposes per-run counters for the playlist sync.
// Nothing is served over HTTP; the registry is written to a node_exporter
// textfile at the end of a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Attempt outcomes
const (
	OutcomeResolved = "resolved"
	OutcomeMissed   = "missed"
)

// Registry holds every livetv metric. It is separate from the default
// registry so the textfile only carries sync metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// ResolveAttempts tracks channel/quality attempts by outcome
	ResolveAttempts = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "livetv_resolve_attempts_total",
		Help: "Total number of channel/quality resolution attempts",
	}, []string{"quality", "outcome"})

	// ClickFailures tracks soft failures when triggering playback
	ClickFailures = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "livetv_click_failures_total",
		Help: "Total number of stream controls that could not be clicked",
	}, []string{"quality"})

	// ChannelsDiscovered is the number of listings found on the directory page
	ChannelsDiscovered = factory.NewGauge(prometheus.GaugeOpts{
		Name: "livetv_channels_discovered",
		Help: "Number of channels listed on the directory page in the last run",
	})

	// EndpointsSubstituted is the number of playlist endpoints replaced in the last run
	EndpointsSubstituted = factory.NewGauge(prometheus.GaugeOpts{
		Name: "livetv_endpoints_substituted",
		Help: "Number of playlist endpoints substituted in the last run",
	})

	// LastSuccess is the unix time of the last run that wrote the playlist
	LastSuccess = factory.NewGauge(prometheus.GaugeOpts{
		Name: "livetv_last_success_timestamp_seconds",
		Help: "Unix timestamp of the last successful playlist update",
	})

	// RunDuration is the wall time of the last run
	RunDuration = factory.NewGauge(prometheus.GaugeOpts{
		Name: "livetv_run_duration_seconds",
		Help: "Duration of the last sync run in seconds",
	})
)

// RecordAttempt increments the attempt counter for a quality and outcome
func RecordAttempt(quality, outcome string) {
	ResolveAttempts.WithLabelValues(quality, outcome).Inc()
}

// RecordClickFailure increments the click failure counter for a quality
func RecordClickFailure(quality string) {
	ClickFailures.WithLabelValues(quality).Inc()
}

// SetChannelsDiscovered sets the discovered channel gauge
func SetChannelsDiscovered(n int) {
	ChannelsDiscovered.Set(float64(n))
}

// SetEndpointsSubstituted sets the substituted endpoint gauge
func SetEndpointsSubstituted(n int) {
	EndpointsSubstituted.Set(float64(n))
}

// RecordSuccess marks a successful playlist update at t that took d
func RecordSuccess(t time.Time, d time.Duration) {
	LastSuccess.Set(float64(t.Unix()))
	RunDuration.Set(d.Seconds())
}

// WriteTextfile writes the registry in text exposition format to path.
// The file is replaced atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

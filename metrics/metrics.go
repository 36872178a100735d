// Package metrics records spin activity with Prometheus collectors.
// There is no HTTP listener; the registry is flushed to a node_exporter
// textfile on exit when a path is configured.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns a private registry so several instances never collide
type Recorder struct {
	registry      *prometheus.Registry
	spinsTotal    prometheus.Counter
	rejectedTotal *prometheus.CounterVec
	winsTotal     *prometheus.CounterVec
	spinDuration  prometheus.Histogram
	namesCurrent  prometheus.Gauge
}

// NewRecorder creates a recorder with all collectors registered
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		spinsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "name_wheel_spins_total",
			Help: "Total number of completed spins",
		}),
		rejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "name_wheel_spins_rejected_total",
				Help: "Total number of spin requests refused, by reason",
			},
			[]string{"reason"},
		),
		winsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "name_wheel_wins_total",
				Help: "Number of times each segment index won",
			},
			[]string{"index"},
		),
		spinDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "name_wheel_spin_duration_seconds",
			Help:    "Configured length of completed spins in seconds",
			Buckets: []float64{0, 0.5, 1, 2, 3, 5, 8, 13},
		}),
		namesCurrent: factory.NewGauge(prometheus.GaugeOpts{
			Name: "name_wheel_names",
			Help: "Number of names currently on the wheel",
		}),
	}
}

// Registry exposes the gatherer for export and tests
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveSpin records one completed spin
func (r *Recorder) ObserveSpin(winningIndex int, duration time.Duration) {
	r.spinsTotal.Inc()
	r.winsTotal.WithLabelValues(fmt.Sprint(winningIndex)).Inc()
	r.spinDuration.Observe(duration.Seconds())
}

// IncRejected counts a refused spin request, reason is the decision name
func (r *Recorder) IncRejected(reason string) {
	r.rejectedTotal.WithLabelValues(reason).Inc()
}

// SetNames tracks the current roster size
func (r *Recorder) SetNames(n int) {
	r.namesCurrent.Set(float64(n))
}

// WriteTextfile writes the registry in text exposition format; empty path is a no-op
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

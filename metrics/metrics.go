// SPDX-License-Identifier: Unlicense OR MIT

// Package metrics exports layout cache statistics as Prometheus
// metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/latticeui/lattice/ui"
)

// Collector counts frames by layout status and measures layout
// passes. It implements ui.Observer.
type Collector struct {
	registry *prometheus.Registry
	frames   *prometheus.CounterVec
	duration prometheus.Histogram
}

var _ ui.Observer = (*Collector)(nil)

// New returns a Collector registered with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_frames_total",
				Help: "Number of frames built, by layout status.",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lattice_layout_duration_seconds",
			Help:    "Duration of layout passes.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	c.registry.MustRegister(c.frames, c.duration)
	return c
}

func (c *Collector) LayoutCached(uint64) {
	c.frames.WithLabelValues(ui.Reused.String()).Inc()
}

func (c *Collector) LayoutComputed(_ uint64, d time.Duration) {
	c.frames.WithLabelValues(ui.Fresh.String()).Inc()
	c.duration.Observe(d.Seconds())
}

// Registry returns the registry holding the metrics of c.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the metrics of c in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Package metrics exports the outcome of a run in the Prometheus text
// format, for node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leapstack-labs/themecheck/internal/pipeline"
)

const namespace = "themecheck"

// Collector holds the gauges of one run on a private registry.
type Collector struct {
	registry *prometheus.Registry

	files       *prometheus.GaugeVec
	diagnostics *prometheus.GaugeVec
	passed      prometheus.Gauge
	duration    prometheus.Gauge
	lastRun     prometheus.Gauge
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		files: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "files",
			Help:      "Theme files seen by the last run, by bucket.",
		}, []string{"bucket"}),
		diagnostics: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "diagnostics",
			Help:      "Reported diagnostics of the last run, by rule category.",
		}, []string{"category"}),
		passed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "passed",
			Help:      "1 if the last run passed, 0 otherwise.",
		}),
		duration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
	}
}

// Observe records a completed run.
func (c *Collector) Observe(o *pipeline.Outcome) {
	if o == nil {
		return
	}

	c.files.WithLabelValues("script").Set(float64(o.Stats.Script))
	c.files.WithLabelValues("style").Set(float64(o.Stats.Style))
	c.files.WithLabelValues("other").Set(float64(o.Stats.Other))

	c.diagnostics.Reset()
	if o.Report != nil {
		for _, cat := range o.Report.Categories {
			c.diagnostics.WithLabelValues(cat.ID).Set(float64(len(cat.Diagnostics)))
		}
	}

	if o.Passed {
		c.passed.Set(1)
	} else {
		c.passed.Set(0)
	}
	c.duration.Set(o.Stats.Duration.Seconds())
	c.lastRun.SetToCurrentTime()
}

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile atomically writes all metrics to path.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

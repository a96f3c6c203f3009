// Package metrics exposes percolation runs as Prometheus metrics.
//
// A Collector owns a private registry, so several collectors (one per run,
// or one per test) never clash. It satisfies analysis.Observer and is safe
// for concurrent use. Batch runs export the registry with WriteTextfile for
// the node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
)

const namespace = "voxlath"

// Collector holds the run metrics.
type Collector struct {
	reg *prometheus.Registry

	// ProbesTotal counts completed probes. Labels: axis.
	ProbesTotal *prometheus.CounterVec

	// ProbeDurationSeconds measures a single probe. Labels: axis.
	ProbeDurationSeconds *prometheus.HistogramVec

	// Voxels holds the last probe's counts. Labels: phase, axis, kind
	// (total, connected, percolated).
	Voxels *prometheus.GaugeVec

	// Components holds the last probe's component counts. Labels: phase,
	// axis, kind (all, percolating).
	Components *prometheus.GaugeVec

	// PercolationRatio is percolated/total. Not set for absent phases.
	// Labels: phase, axis.
	PercolationRatio *prometheus.GaugeVec
}

// NewCollector registers every metric on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		ProbesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Completed percolation probes by axis.",
		}, []string{"axis"}),
		ProbeDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Wall time of one percolation probe.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"axis"}),
		Voxels: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "voxels",
			Help:      "Voxel counts of the last probe per phase and axis.",
		}, []string{"phase", "axis", "kind"}),
		Components: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "components",
			Help:      "Face-seeded component counts per phase and axis.",
		}, []string{"phase", "axis", "kind"}),
		PercolationRatio: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "percolation_ratio",
			Help:      "Percolated over total voxels per phase and axis.",
		}, []string{"phase", "axis"}),
	}
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// ObserveProbe records one finished probe.
func (c *Collector) ObserveProbe(group phase.Group, res burn.Result, elapsed time.Duration) {
	axis := res.Axis.String()
	id := group.ID.String()

	c.ProbesTotal.WithLabelValues(axis).Inc()
	c.ProbeDurationSeconds.WithLabelValues(axis).Observe(elapsed.Seconds())

	c.Voxels.WithLabelValues(id, axis, "total").Set(float64(res.TotalVoxels))
	c.Voxels.WithLabelValues(id, axis, "connected").Set(float64(res.ConnectedVoxels))
	c.Voxels.WithLabelValues(id, axis, "percolated").Set(float64(res.PercolatedVoxels))
	c.Components.WithLabelValues(id, axis, "all").Set(float64(res.Components))
	c.Components.WithLabelValues(id, axis, "percolating").Set(float64(res.PercolatingComponents))

	if res.TotalVoxels > 0 {
		c.PercolationRatio.WithLabelValues(id, axis).Set(float64(res.PercolatedVoxels) / float64(res.TotalVoxels))
	}
}

// WriteTextfile writes the registry in text exposition format to path,
// atomically.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricNamespace = "percona_compsci"

// Counters.
var (
	//nolint:gochecknoglobals
	regionsAcquiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "regions_acquired_total",
		Help:      "Total number of contiguous regions acquired.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	regionsReleasedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "regions_released_total",
		Help:      "Total number of contiguous regions released.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	regionResizesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "region_resizes_total",
		Help:      "Total number of region resizes.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	regionBytesAcquiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "region_bytes_acquired_total",
		Help:      "Total size of the acquired regions in bytes.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	nodesAllocatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "nodes_allocated_total",
		Help:      "Total number of individually allocated nodes.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	nodesFreedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "nodes_freed_total",
		Help:      "Total number of individually freed nodes.",
		Namespace: metricNamespace,
	})
)

// Gauges.
var (
	//nolint:gochecknoglobals
	liveBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "live_bytes",
		Help:      "Bytes currently held by regions and nodes.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	benchDurationSeconds = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:      "bench_duration_seconds",
		Help:      "Duration of the last bench run in seconds.",
		Namespace: metricNamespace,
	}, []string{"bench"})
)

// Init initializes and registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: metricNamespace,
	}))

	reg.MustRegister(
		regionsAcquiredTotal,
		regionsReleasedTotal,
		regionResizesTotal,
		regionBytesAcquiredTotal,
		nodesAllocatedTotal,
		nodesFreedTotal,

		liveBytes,
		benchDurationSeconds,
	)
}

// AddRegionAcquired counts a newly acquired region of the given size.
func AddRegionAcquired(bytes int) {
	regionsAcquiredTotal.Inc()
	regionBytesAcquiredTotal.Add(float64(bytes))
	liveBytes.Add(float64(bytes))
}

// AddRegionReleased counts a released region of the given size.
func AddRegionReleased(bytes int) {
	regionsReleasedTotal.Inc()
	liveBytes.Sub(float64(bytes))
}

// AddRegionResize increments the region resize counter.
func AddRegionResize() {
	regionResizesTotal.Inc()
}

// AddNodeAllocated counts an individually allocated node of the given size.
func AddNodeAllocated(bytes int) {
	nodesAllocatedTotal.Inc()
	liveBytes.Add(float64(bytes))
}

// AddNodeFreed counts an individually freed node of the given size.
func AddNodeFreed(bytes int) {
	nodesFreedTotal.Inc()
	liveBytes.Sub(float64(bytes))
}

// SetBenchDuration sets the duration of the named bench.
func SetBenchDuration(bench string, dur time.Duration) {
	benchDurationSeconds.WithLabelValues(bench).Set(dur.Seconds())
}

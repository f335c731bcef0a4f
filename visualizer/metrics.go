package visualizer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of the runs counter.
const (
	outcomeFound  = "found"
	outcomeNoPath = "no_path"
	outcomeError  = "error"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "gridpath"

// Metrics holds the prometheus collectors for search runs. A nil *Metrics
// records nothing.
type Metrics struct {
	// runs counts runs by algorithm and outcome (found, no_path, error).
	runs *prometheus.CounterVec

	// visited tracks trace length per run.
	visited *prometheus.HistogramVec

	// duration tracks engine time per run in seconds.
	duration *prometheus.HistogramVec
}

// NewMetrics registers the search collectors on reg under namespace.
// An empty namespace falls back to DefaultNamespace. Registering twice on the
// same registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	f := promauto.With(reg)

	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Total search runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		visited: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "visited_nodes",
			Help:      "Number of cells in the visitation trace per run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Search engine run time in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"algorithm"}),
	}
}

// observe records a finished run.
func (m *Metrics) observe(res *Result) {
	if m == nil {
		return
	}
	alg := res.Algorithm.String()
	outcome := outcomeNoPath
	if res.HasPath() {
		outcome = outcomeFound
	}
	m.runs.WithLabelValues(alg, outcome).Inc()
	m.visited.WithLabelValues(alg).Observe(float64(len(res.Visited)))
	m.duration.WithLabelValues(alg).Observe(res.Elapsed.Seconds())
}

// observeError records a run rejected before or during the search.
func (m *Metrics) observeError(alg Algorithm) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(alg.String(), outcomeError).Inc()
}

// Package hlmetrics exposes Prometheus instrumentation for the engine,
// grounded on gloudx-ues-lite's datastore/api package (promauto-registered
// counters/gauges/histogram, served over HTTP by promhttp).
package hlmetrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kestrelsim/hashlife"
)

// Recorder holds all metrics this repository emits.
type Recorder struct {
	GenerationTotal   prometheus.Counter
	Population        prometheus.Gauge
	RootLevel         prometheus.Gauge
	NodeTableSize     prometheus.Gauge
	EvolveDuration    prometheus.Histogram
	ResultCacheHits   prometheus.Counter
	ResultCacheMisses prometheus.Counter
}

// NewRecorder registers and returns a fresh set of metrics against reg. Pass
// prometheus.DefaultRegisterer for the global registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		GenerationTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_generation_total",
			Help: "Number of Evolve ticks applied so far.",
		}),
		Population: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_population",
			Help: "Live cell count of the universe's root.",
		}),
		RootLevel: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_root_level",
			Help: "Level of the universe's root node.",
		}),
		NodeTableSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_node_table_size",
			Help: "Number of distinct nodes interned so far.",
		}),
		EvolveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hashlife_evolve_duration_seconds",
			Help:    "Wall time spent in a single Evolve call.",
			Buckets: prometheus.DefBuckets,
		}),
		ResultCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_evolve_result_cache_hit_total",
			Help: "Evolve calls whose root level required no new recursive work beyond cache hits.",
		}),
		ResultCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_evolve_result_cache_miss_total",
			Help: "Evolve calls that grew the node table.",
		}),
	}
}

// ObserveEvolve times and records a single Universe.Evolve call, then
// updates the gauges from the universe's post-tick Stats(). It records a
// cache hit when the node table did not grow (the §8 scenario 5
// memoization signal) and a miss otherwise.
func (r *Recorder) ObserveEvolve(u *hashlife.Universe, evolve func()) {
	before := u.Stats().NodeTableSize

	start := time.Now()
	evolve()
	r.EvolveDuration.Observe(time.Since(start).Seconds())

	stats := u.Stats()
	r.GenerationTotal.Inc()
	r.Population.Set(float64(stats.Population))
	r.RootLevel.Set(float64(stats.RootLevel))
	r.NodeTableSize.Set(float64(stats.NodeTableSize))

	if stats.NodeTableSize > before {
		r.ResultCacheMisses.Inc()
	} else {
		r.ResultCacheHits.Inc()
	}
}

// Handler returns the /metrics HTTP handler for the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

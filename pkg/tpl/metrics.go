package tpl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	templateCompiles = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weft",
		Subsystem: "tpl",
		Name:      "template_compiles_total",
		Help:      "Skeleton compilations performed across all engines.",
	})

	templateCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weft",
		Subsystem: "tpl",
		Name:      "template_cache_hits_total",
		Help:      "Template lookups served from cache.",
	})

	compileSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "weft",
		Subsystem: "tpl",
		Name:      "compile_duration_seconds",
		Help:      "Time spent compiling template skeletons.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	renderTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weft",
		Subsystem: "tpl",
		Name:      "renders_total",
		Help:      "Render calls served across all engines.",
	})
)

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weft",
		Subsystem: "server",
		Name:      "pages_served_total",
		Help:      "Pages served, by route pattern.",
	}, []string{"route"})

	pageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "weft",
		Subsystem: "server",
		Name:      "page_duration_seconds",
		Help:      "Time spent rendering and writing a page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	pagePanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weft",
		Subsystem: "server",
		Name:      "page_panics_total",
		Help:      "Pages that failed with a panic.",
	})
)

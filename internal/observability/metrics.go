package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	courseLoadsTotal    *prometheus.CounterVec
	cacheLookupsTotal   *prometheus.CounterVec
	cacheEvictionsTotal prometheus.Counter
	scanDurationSeconds prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors for course store
// observability.
func RegisterMetrics() {
	registerOnce.Do(func() {
		courseLoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "course_loads_total",
			Help: "Total number of course document loads, by result.",
		}, []string{"result"})

		cacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "course_cache_lookups_total",
			Help: "Total number of course cache lookups, by outcome.",
		}, []string{"outcome"})

		cacheEvictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "course_cache_evictions_total",
			Help: "Total number of courses evicted from the bounded cache.",
		})

		scanDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "course_scan_duration_seconds",
			Help:    "Duration of data directory scans.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		})

		prometheus.MustRegister(courseLoadsTotal, cacheLookupsTotal, cacheEvictionsTotal, scanDurationSeconds)
	})
}

// CourseLoads exposes the counter for course document loads.
func CourseLoads() *prometheus.CounterVec {
	RegisterMetrics()
	return courseLoadsTotal
}

// CacheLookups exposes the counter for cache hits and misses.
func CacheLookups() *prometheus.CounterVec {
	RegisterMetrics()
	return cacheLookupsTotal
}

// CacheEvictions exposes the eviction counter.
func CacheEvictions() prometheus.Counter {
	RegisterMetrics()
	return cacheEvictionsTotal
}

// ScanDuration exposes the scan duration histogram.
func ScanDuration() prometheus.Histogram {
	RegisterMetrics()
	return scanDurationSeconds
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the portal's Prometheus collectors.
type Registry struct {
	reg *prometheus.Registry

	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
	StaleServed          prometheus.Counter
	Revalidations        prometheus.Counter
	RevalidationFailures prometheus.Counter
	UpstreamLatencySec   prometheus.Histogram
}

// NewRegistry creates an isolated registry with all portal collectors registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "fleetport_order_cache_hits_total"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "fleetport_order_cache_misses_total"})
	stale := prometheus.NewCounter(prometheus.CounterOpts{Name: "fleetport_order_cache_stale_served_total"})
	revalidations := prometheus.NewCounter(prometheus.CounterOpts{Name: "fleetport_order_cache_revalidations_total"})
	revalidationFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "fleetport_order_cache_revalidation_failures_total"})
	upstreamLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fleetport_trimble_request_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(hits, misses, stale, revalidations, revalidationFailures, upstreamLatency)
	return &Registry{
		reg:                  r,
		CacheHits:            hits,
		CacheMisses:          misses,
		StaleServed:          stale,
		Revalidations:        revalidations,
		RevalidationFailures: revalidationFailures,
		UpstreamLatencySec:   upstreamLatency,
	}
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

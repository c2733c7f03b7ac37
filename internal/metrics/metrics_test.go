package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegistryExposesCollectors(t *testing.T) {
	reg := NewRegistry()
	reg.CacheHits.Inc()
	reg.CacheMisses.Inc()
	reg.Revalidations.Inc()
	reg.UpstreamLatencySec.Observe(0.25)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	reg.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	for _, want := range []string{
		"fleetport_order_cache_hits_total 1",
		"fleetport_order_cache_misses_total 1",
		"fleetport_order_cache_revalidations_total 1",
		"fleetport_trimble_request_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

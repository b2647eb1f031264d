package example

import (
	"net/http"

	"github.com/drblury/decrouter/controller"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes a Prometheus registry. It declares its own route, so its
// manifest only names the controller.
type Metrics struct {
	handler http.Handler
}

// NewMetrics serves the metrics gathered by g.
func NewMetrics(g prometheus.Gatherer) *Metrics {
	return &Metrics{handler: promhttp.HandlerFor(g, promhttp.HandlerOpts{})}
}

// Scrape writes the exposition format.
func (m *Metrics) Scrape(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Routes declares GET /metrics.
func (m *Metrics) Routes() []controller.Decl {
	return []controller.Decl{{Method: http.MethodGet, Path: "/metrics", Action: "Scrape"}}
}

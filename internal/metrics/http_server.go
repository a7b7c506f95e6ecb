package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_server",
		Name:      "requests_total",
		Help:      "Count of handled HTTP requests.",
	}, []string{"route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_server",
		Name:      "request_duration_seconds",
		Help:      "Duration of handled HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// HTTPServer records handled requests per route.
type HTTPServer struct{}

// NewHTTPServer constructs the HTTP request collector.
func NewHTTPServer() *HTTPServer {
	return &HTTPServer{}
}

// ObserveRequest records one request with its response status code.
func (HTTPServer) ObserveRequest(route string, code int, started time.Time) {
	c := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(route, c).Inc()
	httpRequestDuration.WithLabelValues(route, c).Observe(time.Since(started).Seconds())
}

// Package metrics holds the Prometheus collectors of the codec services.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/codec"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	codecOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec",
		Name:      "operations_total",
		Help:      "Count of codec operations.",
	}, []string{"operation", "source", "status"})
	codecOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec",
		Name:      "operation_duration_seconds",
		Help:      "Duration of codec operations.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us..2.6s
	}, []string{"operation", "source", "status"})
	codecErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec",
		Name:      "errors_total",
		Help:      "Count of failed codec operations by error kind.",
	}, []string{"operation", "source", "kind"})
	codecPayloadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "txcodec",
		Name:      "payload_bytes",
		Help:      "Size of successfully decoded or encoded transactions.",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 10), // 16B..4MiB
	}, []string{"operation", "source"})
)

// Codec records outcomes of decode and encode calls made by one caller.
type Codec struct {
	source string
}

// NewCodec constructs a collector labelled with the calling surface
// (for example "http" or "cli").
func NewCodec(source string) *Codec {
	if source == "" {
		source = "unknown"
	}
	return &Codec{source: source}
}

// Observe records one operation. size is the encoded transaction length and
// is only recorded on success.
func (m Codec) Observe(operation string, err error, size int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
		kind := "other"
		if k, ok := codec.KindOf(err); ok {
			kind = string(k)
		}
		codecErrorsTotal.WithLabelValues(operation, m.source, kind).Inc()
	} else {
		codecPayloadBytes.WithLabelValues(operation, m.source).Observe(float64(size))
	}

	codecOperationsTotal.WithLabelValues(operation, m.source, status).Inc()
	codecOperationDuration.WithLabelValues(operation, m.source, status).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersRecorded *prometheus.CounterVec
	TransferDuration  prometheus.Histogram
	TransferAmount    prometheus.Histogram

	// Gateway metrics
	GatewayRequests *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	GatewayErrors   *prometheus.CounterVec

	// Ledger metrics
	LedgerAppends      prometheus.Counter
	LedgerAppendErrors prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Transfer metrics
		TransfersRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfergate_transfers_recorded_total",
				Help: "Total number of transfer attempts recorded, by kind and final status",
			},
			[]string{"kind", "status"},
		),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "transfergate_transfer_duration_seconds",
			Help:    "Duration of the full transfer chain",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "transfergate_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Gateway metrics
		GatewayRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfergate_gateway_requests_total",
				Help: "Total downstream gateway calls",
			},
			[]string{"gateway", "operation"},
		),
		GatewayDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transfergate_gateway_duration_seconds",
				Help:    "Downstream gateway call duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"gateway", "operation"},
		),
		GatewayErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfergate_gateway_errors_total",
				Help: "Total downstream gateway call failures",
			},
			[]string{"gateway", "operation"},
		),

		// Ledger metrics
		LedgerAppends: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfergate_ledger_appends_total",
			Help: "Total ledger records written",
		}),
		LedgerAppendErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfergate_ledger_append_errors_total",
			Help: "Total ledger append failures",
		}),
	}
}

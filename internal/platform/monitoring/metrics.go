package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	marketplaceOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_operations_total",
			Help: "Total marketplace operations by outcome",
		},
		[]string{"operation", "status"},
	)

	ticketsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_tickets_sold_total",
			Help: "Ticket units sold through the marketplace",
		},
		[]string{"event_id"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_operation_duration_seconds",
			Help:    "Duration of marketplace operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	listingCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_listing_cache_lookups_total",
			Help: "Seller listing cache lookups by result",
		},
		[]string{"result"},
	)
)

type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// TrackOperation records the outcome and latency of a marketplace operation.
func (m *Monitor) TrackOperation(operation string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	marketplaceOperations.WithLabelValues(operation, status).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Monitor) TrackSale(eventID string, quantity uint64) {
	ticketsSold.WithLabelValues(eventID).Add(float64(quantity))
}

func (m *Monitor) TrackCacheLookup(hit bool) {
	if hit {
		listingCacheLookups.WithLabelValues("hit").Inc()
		return
	}

	listingCacheLookups.WithLabelValues("miss").Inc()
}

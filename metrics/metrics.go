package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "booking_request_rejected_total",
			Help:      "Count of booking operations rejected by error kind.",
		},
		[]string{"kind"},
	)

	ownerDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "owner_decision_total",
			Help:      "Count of owner decisions over bookings.",
		},
		[]string{"decision"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingRejected, ownerDecision)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingRejected(kind string) {
	bookingRejected.WithLabelValues(kind).Inc()
}

func IncOwnerDecision(decision string) {
	ownerDecision.WithLabelValues(decision).Inc()
}

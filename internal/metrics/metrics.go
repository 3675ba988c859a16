package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dreamshoots",
			Name:      "bookings_created_total",
			Help:      "Count of bookings accepted through public intake.",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dreamshoots",
			Name:      "booking_status_transitions_total",
			Help:      "Count of applied booking status changes.",
		},
		[]string{"from", "to"},
	)

	bookingsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dreamshoots",
			Name:      "bookings_deleted_total",
			Help:      "Count of bookings deleted by admins.",
		},
	)

	reels = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dreamshoots",
			Name:      "reels_total",
			Help:      "Count of reel catalog changes by operation.",
		},
		[]string{"op"},
	)

	adminAuthFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dreamshoots",
			Name:      "admin_auth_failures_total",
			Help:      "Count of privileged requests refused by the admin token check.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dreamshoots",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method and status.",
		},
		[]string{"method", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingsCreated,
			statusTransitions,
			bookingsDeleted,
			reels,
			adminAuthFailures,
			httpRequests,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncStatusTransition(from, to string) {
	statusTransitions.WithLabelValues(from, to).Inc()
}

func IncBookingDeleted() {
	bookingsDeleted.Inc()
}

func IncReel(op string) {
	reels.WithLabelValues(op).Inc()
}

func IncAdminAuthFailure() {
	adminAuthFailures.Inc()
}

func ObserveHTTPRequest(method string, status int) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

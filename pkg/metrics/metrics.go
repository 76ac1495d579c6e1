// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	movementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_movements_total",
			Help: "Stock movements recorded, by movement type.",
		},
		[]string{"movement_type"},
	)

	reservationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_reservations_total",
			Help: "Reservation attempts, by result (reserved, rejected, released).",
		},
		[]string{"result"},
	)

	alertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_alerts_total",
			Help: "Alerts raised, by alert type.",
		},
		[]string{"alert_type"},
	)
)

// Register adds the counters to the default registry. Call once from main.
func Register() {
	prometheus.MustRegister(movementsTotal, reservationsTotal, alertsTotal)
}

// Handler serves the /metrics endpoint.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

func MovementRecorded(movementType string) {
	movementsTotal.WithLabelValues(movementType).Inc()
}

func ReservationResult(result string) {
	reservationsTotal.WithLabelValues(result).Inc()
}

func AlertRaised(alertType string) {
	alertsTotal.WithLabelValues(alertType).Inc()
}

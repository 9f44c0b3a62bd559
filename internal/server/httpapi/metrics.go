package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the outcomes the app party cares about operationally:
// how exchanges end and how many trips are planned.
type Metrics struct {
	exchanges    *prometheus.CounterVec
	tripsPlanned prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		exchanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "voyagegate_token_exchanges_total",
			Help: "Launch-token exchange attempts by outcome.",
		}, []string{"outcome"}),
		tripsPlanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "voyagegate_trips_planned_total",
			Help: "Trip sessions created.",
		}),
	}
}

func (m *Metrics) ExchangeOutcome(outcome string) {
	m.exchanges.WithLabelValues(outcome).Inc()
}

func (m *Metrics) TripPlanned() {
	m.tripsPlanned.Inc()
}

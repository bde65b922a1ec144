package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsLoggedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxhub_events_logged_total",
		Help: "Total number of box events successfully logged, by event type.",
	},
		[]string{"type"},
	)

	AlertsRaisedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxhub_alerts_raised_total",
		Help: "Total number of abnormal events that surfaced the alert banner.",
	})

	PersistenceFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxhub_persistence_failures_total",
		Help: "Total number of failed storage writes, by storage key.",
	},
		[]string{"key"},
	)

	DemoSeedsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxhub_demo_seeds_total",
		Help: "Total number of demo data reseeds.",
	})

	HistorySize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "boxhub_history_records",
		Help: "Current number of records in the event history.",
	})
)

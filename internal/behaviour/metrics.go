package behaviour

import "github.com/prometheus/client_golang/prometheus"

var (
	attachTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifybehaviour",
			Subsystem: "behaviour",
			Name:      "attach_total",
			Help:      "Total behaviour attach attempts by result",
		},
		[]string{"result"},
	)

	activeBehaviours = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "notifybehaviour",
			Subsystem: "behaviour",
			Name:      "active",
			Help:      "Behaviours currently held by providers",
		},
	)

	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifybehaviour",
			Subsystem: "behaviour",
			Name:      "updates_total",
			Help:      "Property updates by property and result (applied, dropped)",
		},
		[]string{"property", "result"},
	)

	showTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifybehaviour",
			Subsystem: "behaviour",
			Name:      "show_total",
			Help:      "Notification show attempts by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(attachTotal, activeBehaviours, updatesTotal, showTotal)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssignmentPoolOrders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assignment_pool_orders",
			Help: "Orders in status ready without an assigned partner",
		},
	)

	OutboxPendingEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "outbox_pending_events",
			Help: "Order events waiting to be published",
		},
	)

	OutboxEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_events_total",
			Help: "Order events processed by the outbox relay",
		},
		[]string{"result"}, // published | failed
	)

	OrderEventsConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_consumed_total",
			Help: "Order status events handled by the partner availability worker",
		},
		[]string{"status", "result"},
	)
)

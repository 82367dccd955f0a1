// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_events_received_total",
		Help: "Smartlead events received on /smartlead-event.",
	})
	EventsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_events_delivered_total",
		Help: "Alerts successfully delivered to Slack.",
	})
	DeliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_delivery_failures_total",
		Help: "Alert deliveries to Slack that failed.",
	})
	ActionsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_actions_received_total",
		Help: "Interactive callbacks received on /slack-action.",
	})
	ActionsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_actions_executed_total",
		Help: "Campaign control commands handed to the controller.",
	})
	UnrecognizedCommands = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_unrecognized_commands_total",
		Help: "Interactive callbacks carrying a command the relay does not know.",
	})
	ConfirmationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_confirmation_failures_total",
		Help: "Ephemeral confirmations that could not be posted to the response_url.",
	})
)

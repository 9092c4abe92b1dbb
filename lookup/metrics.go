package lookup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("skycord")

var commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "skycord_commands_total",
	Help: "Bot commands handled, by command and outcome",
}, []string{"command", "outcome"})

var commandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "skycord_command_duration_seconds",
	Help:    "Time to resolve a bot command, including all network calls",
	Buckets: prometheus.ExponentialBucketsRange(0.005, 30, 16),
}, []string{"command"})

package identity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var didResolution = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "skycord_identity_resolve_did",
	Help: "DID document resolutions",
}, []string{"location", "status"})

var didResolutionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "skycord_identity_resolve_did_duration",
	Help:    "Time to resolve a DID document",
	Buckets: prometheus.ExponentialBucketsRange(0.001, 10, 16),
}, []string{"location", "status"})

package handlers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Chungus1310/llm-api-wrapper/internal/provider"
)

var (
	generateRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_generate_requests_total",
			Help: "Total generation requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)
	generateRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_generate_request_latency_seconds",
			Help: "Generation request latency by provider",
		},
		[]string{"provider"},
	)
)

func observeRequest(vendor string, result provider.Result, elapsed time.Duration) {
	outcome := "success"
	if result.IsError() {
		outcome = "error"
	}
	generateRequestsTotal.WithLabelValues(vendor, outcome).Inc()
	generateRequestLatency.WithLabelValues(vendor).Observe(elapsed.Seconds())
}

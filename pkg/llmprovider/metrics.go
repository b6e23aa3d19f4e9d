package llmprovider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "todo_assistant",
		Subsystem: "llm",
		Name:      "requests_total",
		Help:      "LLM generation attempts by provider and outcome.",
	}, []string{"provider", "outcome"})

	tokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "todo_assistant",
		Subsystem: "llm",
		Name:      "tokens_total",
		Help:      "Tokens consumed by provider and direction.",
	}, []string{"provider", "direction"})
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

package nlu

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// classificationsTotal counts analyzed utterances by winning intent.
	// Labels: intent (none, view, create, ...)
	classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "todo_assistant",
		Subsystem: "nlu",
		Name:      "classifications_total",
		Help:      "Total analyzed utterances by classified intent",
	}, []string{"intent"})

	// synthesisTotal counts synthesis attempts by outcome.
	// Labels: outcome (call, no_call, below_threshold)
	synthesisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "todo_assistant",
		Subsystem: "nlu",
		Name:      "synthesis_total",
		Help:      "Direct call synthesis attempts by outcome",
	}, []string{"outcome"})
)

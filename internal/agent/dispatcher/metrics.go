package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var (
	// callsTotal counts dispatched calls by tool and outcome.
	// Labels: tool, outcome (success, failure)
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "todo_assistant",
		Subsystem: "dispatcher",
		Name:      "calls_total",
		Help:      "Total dispatched tool calls by tool and outcome",
	}, []string{"tool", "outcome"})

	// callDuration measures tool execution time.
	// Labels: tool
	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "todo_assistant",
		Subsystem: "dispatcher",
		Name:      "call_duration_seconds",
		Help:      "Tool call execution time",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"tool"})
)

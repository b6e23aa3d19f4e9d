package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "todo_assistant",
	Subsystem: "orchestrator",
	Name:      "queries_total",
	Help:      "Utterances processed, by the stage that produced their calls.",
}, []string{"source"})

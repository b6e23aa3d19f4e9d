// Package dispatcher executes parsed calls against their tools.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/notation"
	"todo-assistant/pkg/log"
)

const tracerName = "todo-assistant/internal/agent/dispatcher"

// CallResult is the outcome of one call. Exactly one of Value (Success) or
// Failure (!Success) is meaningful.
type CallResult struct {
	ToolName string           `json:"tool"`
	Args     []agent.Argument `json:"args"`
	Success  bool             `json:"success"`
	Value    any              `json:"value,omitempty"`
	Failure  string           `json:"failure,omitempty"`
}

// Dispatcher runs calls sequentially. It holds no per-call state.
type Dispatcher struct {
	l log.Logger
}

// New creates a Dispatcher.
func New(l log.Logger) *Dispatcher {
	return &Dispatcher{l: l}
}

// Dispatch executes calls in order and returns one result per call, in the same
// order. A failing call never stops the ones after it.
func (d *Dispatcher) Dispatch(ctx context.Context, calls []notation.Call) []CallResult {
	results := make([]CallResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, d.run(ctx, call))
	}
	return results
}

func (d *Dispatcher) run(ctx context.Context, call notation.Call) (res CallResult) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "dispatcher.Dispatch."+call.ToolName)
	defer span.End()

	start := time.Now()
	res = CallResult{ToolName: call.ToolName, Args: call.Args}

	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Value = nil
			res.Failure = fmt.Sprintf("panic: %v", r)
			d.l.Errorf(ctx, "internal.agent.dispatcher.Dispatch: tool %s panicked: %v", call.ToolName, r)
		}

		outcome := outcomeSuccess
		if !res.Success {
			outcome = outcomeFailure
			span.SetStatus(codes.Error, res.Failure)
		}
		callsTotal.WithLabelValues(call.ToolName, outcome).Inc()
		callDuration.WithLabelValues(call.ToolName).Observe(time.Since(start).Seconds())
		span.SetAttributes(attribute.String("tool", call.ToolName), attribute.Bool("success", res.Success))
	}()

	if call.Tool == nil {
		res.Failure = "tool not registered"
		return res
	}

	args, err := agent.BindArguments(call.Tool.Parameters(), call.Args)
	if err != nil {
		res.Failure = err.Error()
		d.l.Warnf(ctx, "internal.agent.dispatcher.Dispatch: bind %s: %v", call.ToolName, err)
		return res
	}

	value, err := call.Tool.Execute(ctx, args)
	if err != nil {
		res.Failure = err.Error()
		d.l.Warnf(ctx, "internal.agent.dispatcher.Dispatch: execute %s: %v", call.ToolName, err)
		return res
	}

	res.Success = true
	res.Value = value
	return res
}

package http

import (
	"context"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/orchestrator"
	"todo-assistant/pkg/log"
)

// Assistant processes one chat utterance.
type Assistant interface {
	ProcessQuery(ctx context.Context, sessionID, text string) (orchestrator.Reply, error)
}

type handler struct {
	l         log.Logger
	assistant Assistant
	registry  *agent.ToolRegistry
}

// New creates the HTTP handler for the chat API.
func New(l log.Logger, assistant Assistant, registry *agent.ToolRegistry) *handler {
	return &handler{
		l:         l,
		assistant: assistant,
		registry:  registry,
	}
}

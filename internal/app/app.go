// Package app wires the assistant pipeline from config. Both binaries share it.
package app

import (
	"context"
	"errors"
	"fmt"

	"todo-assistant/config"
	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/dispatcher"
	"todo-assistant/internal/agent/orchestrator"
	"todo-assistant/internal/agent/tools"
	"todo-assistant/internal/nlu"
	"todo-assistant/internal/todo"
	"todo-assistant/internal/todo/repository/memory"
	"todo-assistant/internal/todo/usecase"
	"todo-assistant/pkg/llmprovider"
	"todo-assistant/pkg/log"
	"todo-assistant/pkg/ratelimit"
)

// App is the assembled assistant.
type App struct {
	Orchestrator *orchestrator.Orchestrator
	Registry     *agent.ToolRegistry
	Todos        todo.UseCase
	// LLM is nil in rule-only mode.
	LLM *llmprovider.Manager
}

// New builds the todo store, the tool registry, the classifier and the
// orchestrator. Having no enabled LLM provider is not an error.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	engine, err := nlu.New(l, nlu.Config{ConfidenceThreshold: cfg.NLU.ConfidenceThreshold})
	if err != nil {
		return nil, fmt.Errorf("nlu: %w", err)
	}

	repo := memory.New(l)
	uc := usecase.New(repo, l)

	registry := agent.NewToolRegistry()
	if err := tools.Register(registry, uc); err != nil {
		return nil, fmt.Errorf("tools: %w", err)
	}

	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		l.Info(ctx, "No LLM provider enabled, running on rules only")
	case err != nil:
		l.Warnf(ctx, "LLM providers unavailable, running on rules only: %v", err)
	default:
		for _, p := range manager.Providers() {
			l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
		}
	}

	// A nil *Manager must not end up inside the Generator interface.
	var llm orchestrator.Generator
	if manager != nil {
		llm = manager
	}

	orch := orchestrator.New(l, engine, registry, dispatcher.New(l), llm, orchestrator.Config{
		ModelTimeout:    config.Duration(cfg.LLM.ModelTimeout, orchestrator.DefaultModelTimeout),
		SessionTTL:      cfg.Session.TTL,
		SessionCapacity: cfg.Session.Capacity,
		MaxHistory:      cfg.Session.MaxHistory,
		Temperature:     cfg.LLM.Temperature,
		MaxTokens:       cfg.LLM.MaxTokens,
	})

	return &App{
		Orchestrator: orch,
		Registry:     registry,
		Todos:        uc,
		LLM:          manager,
	}, nil
}

// NewLimiter returns the chat rate limiter, or nil when rate limiting is off.
func NewLimiter(cfg config.RateLimitConfig) (*ratelimit.Limiter, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return ratelimit.New(ratelimit.Config{
		RequestsPerMin: cfg.RequestsPerMin,
		Burst:          cfg.Burst,
		TrackedKeys:    cfg.TrackedSessions,
	})
}

package llmprovider

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"todo-assistant/pkg/log"
)

var tracer = otel.Tracer("todo-assistant/pkg/llmprovider")

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // attempts per provider, values < 1 mean 1
	RetryDelay      time.Duration // linear: attempt n waits n*RetryDelay
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "llmprovider.Manager.GenerateContent")
	defer span.End()

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0

	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			lastErr = fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", tried, err)
			break
		}
		tried++

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			span.SetAttributes(
				attribute.String("llm.provider", provider.Name()),
				attribute.String("llm.model", provider.Model()),
			)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, "all providers failed")
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries a single provider with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := max(m.config.RetryAttempts, 1)
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, wrapError(provider.Name(), ctx.Err())
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			requestsTotal.WithLabelValues(provider.Name(), outcomeSuccess).Inc()
			return resp, nil
		}

		requestsTotal.WithLabelValues(provider.Name(), outcomeError).Inc()
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	if resp.Usage != nil {
		tokensTotal.WithLabelValues(provider.Name(), "input").Add(float64(resp.Usage.InputTokens))
		tokensTotal.WithLabelValues(provider.Name(), "output").Add(float64(resp.Usage.OutputTokens))
	}
	m.logger.Infof(ctx, "llmprovider.Manager: generation ok provider=%s model=%s", provider.Name(), provider.Model())
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider.Manager: generation failed provider=%s model=%s: %v",
		provider.Name(), provider.Model(), err)
}

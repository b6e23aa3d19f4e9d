package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"todo-assistant/config"
	"todo-assistant/pkg/chatcompletion"
	"todo-assistant/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped and logged.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}
	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

// NewManagerFromConfig builds a Manager from config. It returns ErrNoProvidersConfigured
// when nothing is enabled, which callers treat as rule-only mode.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      config.Duration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: config.Duration(cfg.MaxTotalTimeout, 0),
	}, l), nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	ccfg := chatcompletion.Config{
		Provider: cfg.Name,
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
	}
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		ccfg.HTTPClient = &http.Client{Timeout: d}
	}

	client, err := chatcompletion.New(ccfg)
	if err != nil {
		return nil, err
	}
	return NewChatCompletionAdapter(client), nil
}

package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-assistant/config"
	"todo-assistant/pkg/llmprovider"
	"todo-assistant/pkg/log"
)

func TestInitializeProviders_PriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 3, APIKey: "k"},
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k"},
			{Name: "openai", Enabled: false, Priority: 2, APIKey: "k"},
			{Name: "ollama", Enabled: true, Priority: 2},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)

	var names []string
	for _, p := range providers {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"deepseek", "ollama", "qwen"}, names)
	assert.Equal(t, "deepseek-chat", providers[0].Model())
}

func TestInitializeProviders_SkipsBroken(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 1}, // missing key
			{Name: "ollama", Enabled: true, Priority: 2, Timeout: "5s"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "ollama", providers[0].Name())
}

func TestInitializeProviders_Errors(t *testing.T) {
	_, err := llmprovider.InitializeProviders(context.Background(), nil, log.NewNop())
	assert.Error(t, err)

	_, err = llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{}, log.NewNop())
	assert.True(t, errors.Is(err, llmprovider.ErrNoProvidersConfigured))

	_, err = llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "qwen", Enabled: true, Priority: 1}},
	}, log.NewNop())
	assert.Error(t, err)
}

func TestManagerFromConfig_EndToEnd(t *testing.T) {
	calls := 0
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer failing.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"role": "assistant", "content": "getTodoStats()"}}},
			"usage":   map[string]any{"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5},
		})
	}))
	defer healthy.Close()

	cfg := &config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "1ms",
		Providers: []config.ProviderConfig{
			{Name: "primary", Enabled: true, Priority: 1, BaseURL: failing.URL, Model: "m1"},
			{Name: "backup", Enabled: true, Priority: 2, BaseURL: healthy.URL, Model: "m2"},
		},
	}

	m, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: llmprovider.RoleUser, Text: "how am I doing?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "getTodoStats()", resp.Text)
	assert.Equal(t, "backup", resp.ProviderName)
	assert.Equal(t, 5, resp.Usage.TotalTokens)
	assert.Equal(t, 2, calls)
}

func TestManagerFromConfig_RateLimitClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	m, err := llmprovider.NewManagerFromConfig(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "local", Enabled: true, Priority: 1, BaseURL: srv.URL, Model: "m"}},
	}, log.NewNop())
	require.NoError(t, err)

	_, err = m.GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: llmprovider.RoleUser, Text: "hi"}},
	})
	assert.ErrorIs(t, err, llmprovider.ErrAllProvidersFailed)
	assert.ErrorIs(t, err, llmprovider.ErrProviderRateLimited)
}

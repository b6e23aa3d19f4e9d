package chatcompletion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("deepseek defaults", func(t *testing.T) {
		cfg := Config{Provider: "DeepSeek", APIKey: "k"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "deepseek", cfg.Provider)
		assert.Equal(t, "https://api.deepseek.com/v1", cfg.BaseURL)
		assert.Equal(t, "deepseek-chat", cfg.Model)
		assert.NotNil(t, cfg.HTTPClient)
	})

	t.Run("ollama needs no key", func(t *testing.T) {
		cfg := Config{Provider: ProviderOllama}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	})

	t.Run("missing key", func(t *testing.T) {
		cfg := Config{Provider: ProviderQwen}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown provider needs url and model", func(t *testing.T) {
		cfg := Config{Provider: "local"}
		assert.Error(t, cfg.Validate())

		cfg = Config{Provider: "local", BaseURL: "http://x/v1/", Model: "m"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://x/v1", cfg.BaseURL)
	})

	t.Run("empty provider", func(t *testing.T) {
		cfg := Config{}
		assert.Error(t, cfg.Validate())
	})
}

func TestComplete(t *testing.T) {
	var got wireRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message":       map[string]any{"role": "assistant", "content": `createTodo("buy milk")`},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17},
		})
	}))
	defer srv.Close()

	c, err := New(Config{Provider: ProviderOpenAI, APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "gpt-test"})
	require.NoError(t, err)

	resp, err := c.Complete(context.Background(), &Request{
		System:      "be brief",
		Messages:    []Message{{Role: "user", Content: "add buy milk"}},
		Temperature: 0.1,
		MaxTokens:   64,
	})
	require.NoError(t, err)

	assert.Equal(t, `createTodo("buy milk")`, resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 17, resp.Usage.TotalTokens)

	assert.Equal(t, "gpt-test", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, wireMessage{Role: "system", Content: "be brief"}, got.Messages[0])
	assert.Equal(t, wireMessage{Role: "user", Content: "add buy milk"}, got.Messages[1])
	assert.Equal(t, 64, got.MaxTokens)
}

func TestComplete_Errors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"slow down"}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c, err := New(Config{Provider: ProviderOllama, BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Complete(context.Background(), &Request{Messages: []Message{{Content: "hi"}}})
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "slow down")
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c, err := New(Config{Provider: ProviderOllama, BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = c.Complete(context.Background(), &Request{})
		assert.Error(t, err)
	})

	t.Run("canceled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		c, err := New(Config{Provider: ProviderOllama, BaseURL: srv.URL})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = c.Complete(ctx, &Request{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

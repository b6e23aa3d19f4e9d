package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T, yaml string) {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		viper.Reset()
	})
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 0.3, cfg.NLU.ConfidenceThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 10, cfg.Session.MaxHistory)
	assert.Equal(t, "20s", cfg.LLM.ModelTimeout)
	assert.Empty(t, cfg.LLM.Providers, "rule-only mode needs no provider")
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	chdirTemp(t, `
nlu:
  confidence_threshold: 0.45
llm:
  model_timeout: 5s
  providers:
    - name: deepseek
      enabled: true
      priority: 1
      api_key: ${DEEPSEEK_API_KEY}
      model: deepseek-chat
    - name: ollama
      enabled: false
      model: llama3.1
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, 0.45, cfg.NLU.ConfidenceThreshold)
	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "sk-test", cfg.LLM.Providers[0].APIKey)
	assert.True(t, cfg.LLM.Providers[0].Enabled)
	assert.False(t, cfg.LLM.Providers[1].Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"threshold", "nlu:\n  confidence_threshold: 1.5\n"},
		{"duplicate priority", "llm:\n  providers:\n    - {name: a, enabled: true, priority: 1, model: m}\n    - {name: b, enabled: true, priority: 1, model: m}\n"},
		{"bad duration", "llm:\n  model_timeout: soon\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chdirTemp(t, tc.yaml)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, Duration("5s", time.Minute))
	assert.Equal(t, time.Minute, Duration("", time.Minute))
	assert.Equal(t, time.Minute, Duration("nope", time.Minute))
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant pipeline
	NLU       NLUConfig
	Session   SessionConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Deliveries
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// NLUConfig tunes the rule-based classifier.
type NLUConfig struct {
	ConfidenceThreshold float64
}

// SessionConfig bounds the rolling conversation history.
type SessionConfig struct {
	TTL        time.Duration
	Capacity   int
	MaxHistory int
}

// RateLimitConfig throttles chat requests per session.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	TrackedSessions int
}

// TelegramConfig enables the bot delivery when BotToken is set. SecretToken
// is registered with the webhook and checked on every update.
type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	NgrokAPIURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
// No enabled provider means the assistant runs on rules only.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	ModelTimeout    string           `yaml:"model_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant pipeline
	cfg.NLU.ConfidenceThreshold = viper.GetFloat64("nlu.confidence_threshold")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.MaxHistory = viper.GetInt("session.max_history")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.TrackedSessions = viper.GetInt("rate_limit.tracked_sessions")

	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.ModelTimeout = viper.GetString("llm.model_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("nlu.confidence_threshold", 0.3)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.capacity", 10000)
	viper.SetDefault("session.max_history", 10) // last 5 turns
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.tracked_sessions", 10000)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.model_timeout", "20s")
	viper.SetDefault("llm.temperature", 0.1)
	viper.SetDefault("llm.max_tokens", 512)

	viper.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")
}

func validate(cfg *Config) error {
	if t := cfg.NLU.ConfidenceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("nlu.confidence_threshold must be within [0, 1], got %v", t)
	}
	if cfg.Session.MaxHistory < 0 {
		return fmt.Errorf("session.max_history must not be negative")
	}
	return validateLLMConfig(&cfg.LLM)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig checks enabled providers. An empty provider list is valid.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	for _, d := range []struct{ key, val string }{
		{"llm.retry_delay", cfg.RetryDelay},
		{"llm.max_total_timeout", cfg.MaxTotalTimeout},
		{"llm.model_timeout", cfg.ModelTimeout},
	} {
		if d.val == "" {
			continue
		}
		if _, err := time.ParseDuration(d.val); err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
	}
	return nil
}

// Duration parses a duration string, falling back to def when empty or invalid.
func Duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

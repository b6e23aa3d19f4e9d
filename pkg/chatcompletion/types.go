package chatcompletion

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds client configuration. Provider selects base URL and model
// defaults; an unknown provider requires BaseURL and Model to be set.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		return fmt.Errorf("chatcompletion: Provider is required")
	}

	d, known := defaults[c.Provider]
	if c.BaseURL == "" {
		c.BaseURL = d.baseURL
	}
	if c.Model == "" {
		c.Model = d.model
	}
	if c.BaseURL == "" || c.Model == "" {
		return fmt.Errorf("chatcompletion: %s: BaseURL and Model are required for unknown providers", c.Provider)
	}
	if known && d.requireKey && c.APIKey == "" {
		return fmt.Errorf("chatcompletion: %s: APIKey is required", c.Provider)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type chatImpl struct {
	provider   string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Message is a single chat turn. Role is "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Request is a text-only generation request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response carries the first choice of a completion.
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is returned for non-2xx responses.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Provider, e.StatusCode, e.Body)
}

// OpenAI-compatible wire types
type wireRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []wireChoice `json:"choices"`
	Usage   wireUsage    `json:"usage"`
}

type wireChoice struct {
	Index        int         `json:"index"`
	Message      wireMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type wireUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

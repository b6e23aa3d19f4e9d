package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "deepseek", "ollama")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized text generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role string
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Validate checks the request carries at least one non-empty message.
func (r *Request) Validate() error {
	if r == nil || len(r.Messages) == 0 {
		return ErrInvalidRequest
	}
	for _, m := range r.Messages {
		if m.Text != "" {
			return nil
		}
	}
	return ErrInvalidRequest
}

package chatcompletion

import "context"

// IChat is a client for OpenAI-compatible chat-completions endpoints.
// Implementations are safe for concurrent use.
type IChat interface {
	// Complete sends a generation request and returns the first choice.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Provider returns the configured provider name
	Provider() string

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newChatImpl(cfg), nil
}

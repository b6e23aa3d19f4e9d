package llmprovider

import (
	"context"

	"todo-assistant/pkg/chatcompletion"
)

// ChatCompletionAdapter adapts an OpenAI-compatible client to the Provider interface
type ChatCompletionAdapter struct {
	client chatcompletion.IChat
}

// NewChatCompletionAdapter creates a new adapter
func NewChatCompletionAdapter(client chatcompletion.IChat) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	creq := &chatcompletion.Request{
		System:      req.SystemInstruction,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatcompletion.Message, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		creq.Messages[i] = chatcompletion.Message{Role: msg.Role, Content: msg.Text}
	}

	resp, err := a.client.Complete(ctx, creq)
	if err != nil {
		return nil, wrapError(a.Name(), err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name implements Provider interface
func (a *ChatCompletionAdapter) Name() string {
	return a.client.Provider()
}

// Model implements Provider interface
func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}

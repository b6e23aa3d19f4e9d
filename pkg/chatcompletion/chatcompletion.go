package chatcompletion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newChatImpl(cfg Config) *chatImpl {
	return &chatImpl{
		provider:   cfg.Provider,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Complete posts to {baseURL}/chat/completions.
func (c *chatImpl) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%s: nil request", c.provider)
	}

	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", c.provider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.provider, err)
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: API call failed: %w", c.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{Provider: c.provider, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var wr wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", c.provider, err)
	}
	if len(wr.Choices) == 0 {
		return nil, fmt.Errorf("%s: response has no choices", c.provider)
	}

	choice := wr.Choices[0]
	return &Response{
		Text:         choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage: Usage{
			InputTokens:  wr.Usage.PromptTokens,
			OutputTokens: wr.Usage.CompletionTokens,
			TotalTokens:  wr.Usage.TotalTokens,
		},
	}, nil
}

func (c *chatImpl) Provider() string { return c.provider }

func (c *chatImpl) Model() string { return c.model }

func (c *chatImpl) transformRequest(req *Request) *wireRequest {
	wr := &wireRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]wireMessage, 0, len(req.Messages)+1),
	}
	if req.System != "" {
		wr.Messages = append(wr.Messages, wireMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "" {
			role = "user"
		}
		wr.Messages = append(wr.Messages, wireMessage{Role: role, Content: m.Content})
	}
	return wr
}

package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"todo-assistant/pkg/chatcompletion"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Kind     error // one of the sentinel errors above, or nil
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Kind != nil {
		return fmt.Sprintf("provider %s: %v: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	if e.Kind != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Err}
}

// wrapError classifies a raw client error.
func wrapError(provider string, err error) error {
	pe := &ProviderError{Provider: provider, Err: err}

	var apiErr *chatcompletion.APIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		pe.Kind = ErrProviderTimeout
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests:
		pe.Kind = ErrProviderRateLimited
	}
	return pe
}

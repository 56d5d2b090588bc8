// Package llm holds the chat-completion providers used for campaign field extraction.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned before any request is made when no key is configured.
var ErrMissingAPIKey = errors.New("API key not configured")

// CompletionRequest is a single system+user exchange with an optional JSON schema
// constraining the reply.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	Temperature  float64
	SchemaName   string
	Schema       map[string]interface{}
}

// Completer returns the raw text of the model's reply.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// StatusError is returned when the provider answers with a non-success HTTP status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API request failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Config is shared by all providers.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func withDefaultTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Package completion talks to the external text-generation service.
package completion

import (
	"context"
	"errors"
)

var (
	// ErrCompletionFailed wraps every provider-side failure: transport, auth,
	// quota or a malformed response.
	ErrCompletionFailed = errors.New("completion failed")

	// ErrNotConfigured is returned when a provider is used without credentials.
	ErrNotConfigured = errors.New("completion provider not configured")
)

// Request is one system + user message exchange.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Client sends a request and returns the raw completion text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

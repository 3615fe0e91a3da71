package llm

import (
	"context"
)

// Client is an interface for invoking hosted LLM models
// This allows mocking in tests without making real API calls
type Client interface {
	InvokeModel(ctx context.Context, request Request) (*Response, error)
	InvokeModelWithRetry(ctx context.Context, request Request) (*Response, error)
}

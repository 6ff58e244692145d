package translate

import "context"

// Request is one completion call: a fixed system instruction plus the JSON
// payload to translate, routed to a specific model.
type Request struct {
	Model  string
	System string
	User   string
}

// Provider sends a request to an LLM and returns the raw text response.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}


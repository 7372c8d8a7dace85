package llm

import "context"

// Provider is the single generation primitive every workflow builds on.
// Temperature travels with the call - concurrent requests must never observe
// each other's setting.
type Provider interface {
	Complete(ctx context.Context, systemInstructions string, userContent string, temperature float32) (string, error)
}

package interfaces

import "context"

// CompletionRequest describes a single prompt sent to the generative
// text backend.
type CompletionRequest struct {
	// Prompt is the full user prompt text
	Prompt string

	// MaxTokens bounds the completion length
	MaxTokens int

	// Temperature controls sampling randomness
	Temperature float64
}

// TextGenerator defines the interface for the generative text backend.
// Implementations wrap a chat-completions style HTTP API.
//
// A generator constructed without credentials reports Enabled() == false
// and fails every Complete call immediately; callers treat that the same
// as any other transient failure.
type TextGenerator interface {
	// Complete sends one prompt and returns the raw completion text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Enabled reports whether the backend is configured and usable.
	Enabled() bool
}

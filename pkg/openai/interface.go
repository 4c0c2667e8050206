package openai

import "context"

// IOpenAI defines the interface for the chat-completion client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// Complete sends one system+user exchange and returns the generated text.
	// When req.JSONMode is set the model is constrained to emit a JSON object.
	Complete(ctx context.Context, req *CompleteRequest) (string, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new completion client with the given configuration.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}

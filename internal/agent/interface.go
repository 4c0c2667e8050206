package agent

import "context"

// UseCase defines the business logic interface for the agent domain.
type UseCase interface {
	// Process runs one message through classify → branch → act and returns
	// a normalized reply. Only ErrTaskExtraction and ErrTaskPersistence
	// escape as errors; every other failure degrades into a friendly reply.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}

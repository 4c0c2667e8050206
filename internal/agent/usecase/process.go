package usecase

import (
	"context"
	"fmt"
	"time"

	"chat-task-assistant/internal/agent"
	repo "chat-task-assistant/internal/task/repository"
)

// Process runs one message through classify → branch → act.
//
// Failure policy, step by step:
//   - classification failure routes to the conversational branch (fail-open)
//   - extraction failure aborts with ErrTaskExtraction; nothing is persisted
//   - advice failure substitutes FallbackAdvice; creation still succeeds
//   - persistence failure aborts with ErrTaskPersistence
//   - conversation failure substitutes FallbackGreeting
func (uc *implUseCase) Process(ctx context.Context, input agent.ProcessInput) (agent.ProcessOutput, error) {
	classification := uc.classify(ctx, input.Message)
	uc.l.Infof(ctx, "uc.Process: classified isTask=%t confidence=%.2f", classification.IsTask, classification.Confidence)

	if !classification.IsTask {
		return uc.converse(ctx, input.Message), nil
	}

	now := time.Now().In(uc.dateMath.Location())

	info, err := uc.extract(ctx, input.Message, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process extract: %v", err)
		return agent.ProcessOutput{}, fmt.Errorf("%w: %v", agent.ErrTaskExtraction, err)
	}

	info.Advice = uc.advise(ctx, info.Title)

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:  info.Title,
		Date:   info.Date,
		Notes:  info.Notes,
		Advice: info.Advice,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process CreateTask: %v", err)
		return agent.ProcessOutput{}, fmt.Errorf("%w: %v", agent.ErrTaskPersistence, err)
	}

	label := uc.dateMath.Label(created.Date, now)
	message := fmt.Sprintf("Got it! I've added %q for %s.\n\n%s", created.Title, label, created.Advice)

	return agent.ProcessOutput{
		Message: message,
		IsTask:  true,
		Task: &agent.TaskSummary{
			ID:     created.ID,
			Title:  created.Title,
			Date:   created.Date,
			Notes:  created.Notes,
			Advice: created.Advice,
		},
	}, nil
}

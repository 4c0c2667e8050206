package usecase

import (
	"chat-task-assistant/internal/task/repository"
	"chat-task-assistant/pkg/datemath"
	"chat-task-assistant/pkg/log"
	"chat-task-assistant/pkg/openai"
)

type implUseCase struct {
	l        log.Logger
	llm      openai.IOpenAI
	repo     repository.Repository
	dateMath *datemath.Parser
}

// New creates a new agent UseCase instance. The completion client and the
// task repository are process-wide singletons; the usecase itself holds no
// mutable state, so concurrent Process calls need no locking here.
func New(l log.Logger, llm openai.IOpenAI, repo repository.Repository, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		dateMath: dateMath,
	}
}

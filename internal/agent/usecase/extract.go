package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"chat-task-assistant/internal/agent"
	"chat-task-assistant/internal/agent/prompt"
	"chat-task-assistant/pkg/openai"
)

// extract turns a task message into structured fields. Unlike classify,
// every failure here is fatal to the current Process call.
func (uc *implUseCase) extract(ctx context.Context, message string, now time.Time) (agent.TaskInfo, error) {
	raw, err := uc.llm.Complete(ctx, &openai.CompleteRequest{
		SystemInstruction: prompt.Extraction(now),
		UserText:          message,
		JSONMode:          true,
		Temperature:       extractTemperature,
		MaxTokens:         extractMaxTokens,
	})
	if err != nil {
		return agent.TaskInfo{}, fmt.Errorf("completion failed: %w", err)
	}

	return uc.parseTaskInfo(raw)
}

// parseTaskInfo validates the three-field extraction reply and normalizes
// the date to midnight in the service timezone.
func (uc *implUseCase) parseTaskInfo(raw string) (agent.TaskInfo, error) {
	cleaned := sanitizeJSONResponse(raw)
	if !gjson.Valid(cleaned) {
		return agent.TaskInfo{}, fmt.Errorf("invalid extraction JSON")
	}

	titleField := gjson.Get(cleaned, "title")
	if !titleField.Exists() || titleField.Type != gjson.String {
		return agent.TaskInfo{}, fmt.Errorf("title is not a string")
	}
	title := strings.TrimSpace(titleField.String())
	if title == "" {
		return agent.TaskInfo{}, fmt.Errorf("empty title")
	}
	if runes := []rune(title); len(runes) > MaxTitleLength {
		title = string(runes[:MaxTitleLength])
	}

	dateField := gjson.Get(cleaned, "date")
	if !dateField.Exists() || dateField.Type != gjson.String {
		return agent.TaskInfo{}, fmt.Errorf("date is not a string")
	}
	date, err := uc.dateMath.ParseDate(dateField.String())
	if err != nil {
		return agent.TaskInfo{}, err
	}

	// notes is optional, but when present it must actually be a string.
	notesField := gjson.Get(cleaned, "notes")
	if notesField.Exists() && notesField.Type != gjson.String && notesField.Type != gjson.Null {
		return agent.TaskInfo{}, fmt.Errorf("notes is not a string")
	}

	return agent.TaskInfo{
		Title: title,
		Date:  date,
		Notes: notesField.String(),
	}, nil
}

// advise generates tips for the extracted title. Advice is an enhancement,
// not load-bearing: any failure substitutes the fixed fallback text.
func (uc *implUseCase) advise(ctx context.Context, title string) string {
	advice, err := uc.llm.Complete(ctx, &openai.CompleteRequest{
		SystemInstruction: prompt.Advice(title),
		UserText:          title,
		Temperature:       adviceTemperature,
		MaxTokens:         adviceMaxTokens,
	})
	if err != nil || strings.TrimSpace(advice) == "" {
		uc.l.Warnf(ctx, "uc.advise: falling back to canned advice: %v", err)
		return FallbackAdvice
	}
	return strings.TrimSpace(advice)
}

// converse produces the conversational reply, degrading to a fixed greeting
// when the completion service fails. This branch never surfaces an error.
func (uc *implUseCase) converse(ctx context.Context, message string) agent.ProcessOutput {
	reply, err := uc.llm.Complete(ctx, &openai.CompleteRequest{
		SystemInstruction: prompt.Conversation(),
		UserText:          message,
		Temperature:       conversationTemperature,
		MaxTokens:         converseMaxTokens,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		uc.l.Warnf(ctx, "uc.converse: falling back to greeting: %v", err)
		return agent.ProcessOutput{Message: FallbackGreeting, IsTask: false}
	}
	return agent.ProcessOutput{Message: strings.TrimSpace(reply), IsTask: false}
}

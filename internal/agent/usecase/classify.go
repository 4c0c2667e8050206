package usecase

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"chat-task-assistant/internal/agent"
	"chat-task-assistant/internal/agent/prompt"
	"chat-task-assistant/pkg/openai"
)

// classify routes a message between the task and conversational branches.
// Every failure mode (service error, bad JSON, out-of-range confidence)
// falls back to the conversational branch; classification never errors out.
func (uc *implUseCase) classify(ctx context.Context, message string) agent.Classification {
	raw, err := uc.llm.Complete(ctx, &openai.CompleteRequest{
		SystemInstruction: prompt.Classification(),
		UserText:          message,
		JSONMode:          true,
		Temperature:       classifyTemperature,
		MaxTokens:         classifyMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.classify: completion failed, routing to conversation: %v", err)
		return agent.Classification{}
	}

	classification, err := parseClassification(raw)
	if err != nil {
		uc.l.Warnf(ctx, "uc.classify: %v, routing to conversation (raw=%q)", err, raw)
		return agent.Classification{}
	}
	return classification
}

// parseClassification validates the two-field classification reply.
// Confidence outside [0,1] is treated the same as a parse failure.
func parseClassification(raw string) (agent.Classification, error) {
	cleaned := sanitizeJSONResponse(raw)
	if !gjson.Valid(cleaned) {
		return agent.Classification{}, fmt.Errorf("invalid classification JSON")
	}

	isTask := gjson.Get(cleaned, "isTask")
	if !isTask.Exists() || (isTask.Type != gjson.True && isTask.Type != gjson.False) {
		return agent.Classification{}, fmt.Errorf("isTask is not a boolean")
	}

	confidence := gjson.Get(cleaned, "confidence")
	if !confidence.Exists() || confidence.Type != gjson.Number {
		return agent.Classification{}, fmt.Errorf("confidence is not a number")
	}
	if confidence.Float() < 0 || confidence.Float() > 1 {
		return agent.Classification{}, fmt.Errorf("confidence %v out of range", confidence.Float())
	}

	return agent.Classification{
		IsTask:     isTask.Bool(),
		Confidence: confidence.Float(),
	}, nil
}

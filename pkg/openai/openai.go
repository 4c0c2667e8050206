package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// newOpenAIImpl creates a new client implementation.
func newOpenAIImpl(cfg Config) *openAIImpl {
	impl := &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
	if cfg.CacheTTL > 0 {
		impl.cache = expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return impl
}

// Complete sends a chat-completion request and returns the first choice's text.
func (o *openAIImpl) Complete(ctx context.Context, req *CompleteRequest) (string, error) {
	key := cacheKey(req)
	if o.cache != nil {
		if text, ok := o.cache.Get(key); ok {
			return text, nil
		}
	}

	chatReq := o.transformRequest(req)

	body, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("openai: failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}

	text := chatResp.Choices[0].Message.Content
	if o.cache != nil {
		o.cache.Add(key, text)
	}
	return text, nil
}

// Model returns the model being used.
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest builds the chat-completions payload.
func (o *openAIImpl) transformRequest(req *CompleteRequest) *chatRequest {
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, 2),
	}

	if req.SystemInstruction != "" {
		chatReq.Messages = append(chatReq.Messages, chatMessage{
			Role:    "system",
			Content: req.SystemInstruction,
		})
	}
	chatReq.Messages = append(chatReq.Messages, chatMessage{
		Role:    "user",
		Content: req.UserText,
	})

	if req.JSONMode {
		chatReq.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	return chatReq
}

func cacheKey(req *CompleteRequest) string {
	mode := "text"
	if req.JSONMode {
		mode = "json"
	}
	return fmt.Sprintf("%s\x00%s\x00%s", mode, req.SystemInstruction, req.UserText)
}

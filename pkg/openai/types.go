package openai

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Config holds completion client configuration.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client

	// CacheTTL enables an in-memory response cache when > 0. Identical
	// requests within the TTL are answered without an API call. Leave zero
	// to call the API on every request.
	CacheTTL  time.Duration
	CacheSize int
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	return nil
}

// CompleteRequest is one system+user completion exchange.
type CompleteRequest struct {
	SystemInstruction string
	UserText          string
	JSONMode          bool
	Temperature       float64
	MaxTokens         int
}

// openAIImpl is the internal implementation of IOpenAI.
type openAIImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	cache      *expirable.LRU[string, string]
}

// --- wire types for the chat-completions endpoint ---

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

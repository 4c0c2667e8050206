package openai

import "time"

// Defaults applied by Config.Validate.
const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultTimeout = 30 * time.Second

	// DefaultCacheSize bounds the optional response cache when a TTL is set.
	DefaultCacheSize = 256
)

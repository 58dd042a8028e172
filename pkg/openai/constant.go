package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-3.5-turbo"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

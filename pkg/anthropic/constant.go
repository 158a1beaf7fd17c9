package anthropic

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-3-haiku-20240307"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultMaxTokens is used when the request does not set one; the API requires it.
	DefaultMaxTokens = 1024

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	apiVersion = "2023-06-01"
)

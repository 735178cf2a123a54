package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient creates an OpenAI client. baseURL is optional and points the
// client at an API-compatible server.
func NewClient(apiKey, baseURL string) *openai.Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

package assistant

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Assistant sends prompts to a chat completion API and returns the
// model's reply. Create instances with [New].
type Assistant struct {
	client *openai.Client
	model  string
	role   string
}

// New creates an [Assistant] from a validated [Config].
func New(cfg *Config) *Assistant {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.APIBase

	return &Assistant{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		role:   cfg.Role,
	}
}

// Ask sends the prompt as a single chat message and returns the text of
// the first choice in the response.
func (a *Assistant) Ask(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: a.role, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion response contains no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

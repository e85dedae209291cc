package codefmt

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider reformats code through the OpenAI chat completion API.
type OpenAIProvider struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAI creates an OpenAI provider. An empty model selects the
// default.
func NewOpenAI(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		apiKey: apiKey,
		model:  model,
	}
}

// Name implements the Provider interface.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Validate implements the Provider interface.
func (p *OpenAIProvider) Validate() error {
	if p.apiKey == "" {
		return &Error{Provider: p.Name(), Err: fmt.Errorf("API key not configured")}
	}
	return nil
}

// Format implements the Provider interface.
func (p *OpenAIProvider) Format(ctx context.Context, code, language string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(language)},
			{Role: openai.ChatMessageRoleUser, Content: code},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", &Error{Provider: p.Name(), Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Error{Provider: p.Name(), Err: fmt.Errorf("empty response")}
	}
	return stripFences(resp.Choices[0].Message.Content), nil
}

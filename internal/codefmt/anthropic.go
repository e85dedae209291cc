package codefmt

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-3-5-sonnet-20241022"

// AnthropicProvider reformats code through the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	apiKey string
	model  string
}

// NewAnthropic creates an Anthropic provider. An empty model selects the
// default.
func NewAnthropic(apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		apiKey: apiKey,
		model:  model,
	}
}

// Name implements the Provider interface.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Validate implements the Provider interface.
func (p *AnthropicProvider) Validate() error {
	if p.apiKey == "" {
		return &Error{Provider: p.Name(), Err: fmt.Errorf("API key not configured")}
	}
	return nil
}

// Format implements the Provider interface.
func (p *AnthropicProvider) Format(ctx context.Context, code, language string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 4096,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt(language)}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(code)),
		},
	})
	if err != nil {
		return "", &Error{Provider: p.Name(), Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(variant.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &Error{Provider: p.Name(), Err: fmt.Errorf("empty response")}
	}
	return stripFences(sb.String()), nil
}

package codefmt

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider reformats code through the Google Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini provider. An empty model selects the
// default.
func NewGemini(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
	}
}

// Name implements the Provider interface.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Validate implements the Provider interface.
func (p *GeminiProvider) Validate() error {
	if p.apiKey == "" {
		return &Error{Provider: p.Name(), Err: fmt.Errorf("API key not configured")}
	}
	return nil
}

// Format implements the Provider interface.
func (p *GeminiProvider) Format(ctx context.Context, code, language string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &Error{Provider: p.Name(), Err: err}
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(code), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(language), genai.RoleUser),
	})
	if err != nil {
		return "", &Error{Provider: p.Name(), Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &Error{Provider: p.Name(), Err: fmt.Errorf("empty response")}
	}
	return stripFences(text), nil
}

// Package config manages application configuration.
package config

// Config represents the application configuration.
type Config struct {
	LineLength    int                 `yaml:"line_length"`
	NoBreak       []string            `yaml:"no_break,omitempty"`
	CodeFormatter CodeFormatter       `yaml:"code_formatter"`
	Providers     map[string]Provider `yaml:"providers"`
}

// CodeFormatter selects how embedded code blocks are reformatted.
type CodeFormatter struct {
	// Provider is "exec", "anthropic", "openai" or "gemini"; empty
	// disables code formatting.
	Provider string `yaml:"provider,omitempty"`
	// Command is the external command line for the exec provider.
	Command string `yaml:"command,omitempty"`
	// Model overrides the AI provider's default model.
	Model string `yaml:"model,omitempty"`
}

// Provider holds credentials for one AI code formatter.
type Provider struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LineLength: 79,
		NoBreak:    []string{`~[^~]*~`},
		Providers: map[string]Provider{
			"anthropic": {
				APIKey: "${ANTHROPIC_API_KEY}",
				Model:  "claude-3-5-sonnet-20241022",
			},
			"openai": {
				APIKey: "${OPENAI_API_KEY}",
				Model:  "gpt-4o-mini",
			},
			"gemini": {
				APIKey: "${GOOGLE_API_KEY}",
				Model:  "gemini-1.5-flash",
			},
		},
	}
}

// GetProvider returns the provider configuration by name.
func (c *Config) GetProvider(name string) (*Provider, bool) {
	p, ok := c.Providers[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

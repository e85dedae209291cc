package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docforge-io/rstfmt/internal/codefmt"
	"github.com/docforge-io/rstfmt/internal/config"
)

type providerInfo struct {
	Name         string
	DefaultModel string
	EnvKey       string
	Description  string
}

var providers = []providerInfo{
	{
		Name:         "exec",
		DefaultModel: "-",
		EnvKey:       "-",
		Description:  "External command (code on stdin, result on stdout)",
	},
	{
		Name:         "anthropic",
		DefaultModel: "claude-3-5-sonnet-20241022",
		EnvKey:       "ANTHROPIC_API_KEY",
		Description:  "Anthropic Claude API",
	},
	{
		Name:         "openai",
		DefaultModel: "gpt-4o-mini",
		EnvKey:       "OPENAI_API_KEY",
		Description:  "OpenAI GPT API",
	},
	{
		Name:         "gemini",
		DefaultModel: "gemini-1.5-flash",
		EnvKey:       "GOOGLE_API_KEY",
		Description:  "Google Gemini API",
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available code formatter providers",
	Long: `List the providers that can reformat embedded code blocks.

The exec provider runs the command given by --code-formatter or the
code_formatter.command config key. The AI providers need an API key in
the listed environment variable or in the config file.

Examples:
  rstfmt api.rst --code-formatter gofmt
  rstfmt api.rst --code-provider anthropic`,
	Run: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "PROVIDER\tDEFAULT MODEL\tENV\tSTATUS\tDESCRIPTION")
	for _, p := range providers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.DefaultModel, p.EnvKey, checkProviderStatus(p), p.Description)
	}
}

func checkProviderStatus(p providerInfo) string {
	if p.Name == "exec" {
		// always usable once a command is configured
		return "available"
	}
	if os.Getenv(p.EnvKey) != "" {
		return "configured"
	}
	return "not configured"
}

// providerRegistry builds the registry of every provider constructible
// from the given configuration.
func providerRegistry(cfg *config.Config) *codefmt.Registry {
	reg := codefmt.NewRegistry()

	command := rootCodeCommand
	if command == "" {
		command = cfg.CodeFormatter.Command
	}
	if command != "" {
		_ = reg.Register(codefmt.NewExec(command))
	}

	model := cfg.CodeFormatter.Model
	if p, ok := cfg.GetProvider("anthropic"); ok {
		_ = reg.Register(codefmt.NewAnthropic(p.APIKey, pick(model, p.Model)))
	}
	if p, ok := cfg.GetProvider("openai"); ok {
		_ = reg.Register(codefmt.NewOpenAI(p.APIKey, pick(model, p.Model)))
	}
	if p, ok := cfg.GetProvider("gemini"); ok {
		_ = reg.Register(codefmt.NewGemini(p.APIKey, pick(model, p.Model)))
	}
	return reg
}

// buildCodeFormatter resolves the provider selected by flags and config,
// or nil when code formatting is disabled.
func buildCodeFormatter(cfg *config.Config) (codefmt.Provider, error) {
	name := rootCodeProvider
	if name == "" && rootCodeCommand != "" {
		name = "exec"
	}
	if name == "" {
		name = cfg.CodeFormatter.Provider
	}
	if name == "" {
		return nil, nil
	}

	reg := providerRegistry(cfg)
	provider, err := reg.Get(name)
	if err != nil {
		return nil, fmt.Errorf("code formatter %q is not available: configure it via config or flags", name)
	}
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	return provider, nil
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// Package cli implements the rstfmt command line interface.
package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/docforge-io/rstfmt/internal/config"
	"github.com/docforge-io/rstfmt/internal/format"
)

var version = "dev"

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

var (
	rootCheck        bool
	rootDiff         bool
	rootStdout       bool
	rootSilent       bool
	rootLineLength   int
	rootCodeCommand  string
	rootCodeProvider string
)

var rootCmd = &cobra.Command{
	Use:   "rstfmt <file>...",
	Short: "Reformat reStructuredText files into canonical form",
	Long: `rstfmt rewrites reStructuredText documents into a canonical form:
paragraphs wrapped to a maximum width, heading decorations normalized by
nesting depth, and blank lines between blocks made consistent. Content is
never changed, only whitespace and decoration.

Files are rewritten in place. With --check nothing is written and the
exit status reports whether changes would be needed; --diff prints a
unified diff instead.

Embedded code blocks can be piped through an external formatter with
--code-formatter (e.g. gofmt), or through a configured AI provider with
--code-provider (see 'rstfmt providers').

Examples:
  rstfmt README.rst
  rstfmt --check docs/*.rst
  rstfmt --diff --line-length 100 guide.rst
  rstfmt --code-formatter gofmt api.rst`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rstfmt %s\n", version)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&rootCheck, "check", "c", false, "report whether files need formatting without writing")
	rootCmd.Flags().BoolVarP(&rootDiff, "diff", "d", false, "print a unified diff instead of rewriting")
	rootCmd.Flags().BoolVar(&rootStdout, "stdout", false, "print formatted output to stdout instead of rewriting")
	rootCmd.Flags().BoolVarP(&rootSilent, "silent", "s", false, "suppress per-file status messages")
	rootCmd.Flags().IntVarP(&rootLineLength, "line-length", "l", 0, "maximum line width (default from config, 79)")
	rootCmd.Flags().StringVar(&rootCodeCommand, "code-formatter", "", "external command to format embedded code blocks")
	rootCmd.Flags().StringVar(&rootCodeProvider, "code-provider", "", "code formatter provider (exec, anthropic, openai, gemini)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if rootStdout && (rootCheck || rootDiff) {
		return fmt.Errorf("--stdout cannot be combined with --check or --diff")
	}

	loader, err := config.NewLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	var changed, failed int
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "rstfmt: %v\n", err)
			continue
		}

		res, err := format.Format(cmd.Context(), string(data), opts)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "rstfmt: %s: %v\n", path, err)
			continue
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "rstfmt: %s: warning: %s\n", path, w)
		}

		if rootStdout {
			fmt.Fprint(cmd.OutOrStdout(), res.Output)
			continue
		}
		if !res.Changed {
			status(cmd, "%s unchanged", path)
			continue
		}
		changed++

		switch {
		case rootDiff:
			printDiff(cmd.OutOrStdout(), path, string(data), res.Output)
		case rootCheck:
			status(cmd, "%s needs formatting", path)
		default:
			if err := os.WriteFile(path, []byte(res.Output), 0644); err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "rstfmt: %v\n", err)
				continue
			}
			status(cmd, "%s reformatted", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to format %d file(s)", failed)
	}
	if (rootCheck || rootDiff) && changed > 0 {
		return fmt.Errorf("%d file(s) would be reformatted", changed)
	}
	return nil
}

// buildOptions merges configuration and flags into pipeline options.
func buildOptions(cfg *config.Config) (format.Options, error) {
	opts := format.DefaultOptions()
	opts.CheckMode = rootCheck

	if cfg.LineLength > 0 {
		opts.MaxLineWidth = cfg.LineLength
	}
	if rootLineLength > 0 {
		opts.MaxLineWidth = rootLineLength
	}

	if len(cfg.NoBreak) > 0 {
		patterns := make([]*regexp.Regexp, 0, len(cfg.NoBreak))
		for _, expr := range cfg.NoBreak {
			re, err := regexp.Compile(expr)
			if err != nil {
				return opts, fmt.Errorf("invalid no_break pattern %q: %w", expr, err)
			}
			patterns = append(patterns, re)
		}
		opts.NoBreakPatterns = patterns
	}

	provider, err := buildCodeFormatter(cfg)
	if err != nil {
		return opts, err
	}
	opts.CodeFormatter = provider
	return opts, nil
}

func status(cmd *cobra.Command, formatStr string, args ...any) {
	if rootSilent {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), formatStr+"\n", args...)
}

package codefmt

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecProvider runs a local command: the code block goes to the command's
// stdin, the formatted result comes back on stdout. This is the default
// provider for the code_formatter option (e.g. "gofmt" or
// "clang-format").
type ExecProvider struct {
	name string
	args []string
}

// NewExec creates a provider for the given command line. The command is
// split on whitespace; the first field is the executable.
func NewExec(command string) *ExecProvider {
	fields := strings.Fields(command)
	p := &ExecProvider{}
	if len(fields) > 0 {
		p.name = fields[0]
		p.args = fields[1:]
	}
	return p
}

// Name implements the Provider interface.
func (p *ExecProvider) Name() string {
	return "exec"
}

// Validate checks that the executable can be found.
func (p *ExecProvider) Validate() error {
	if p.name == "" {
		return &Error{Provider: p.Name(), Err: fmt.Errorf("no command configured")}
	}
	if _, err := exec.LookPath(p.name); err != nil {
		return &Error{Provider: p.Name(), Err: err}
	}
	return nil
}

// Format implements the Provider interface.
func (p *ExecProvider) Format(ctx context.Context, code, language string) (string, error) {
	if p.name == "" {
		return "", &Error{Provider: p.Name(), Err: fmt.Errorf("no command configured")}
	}

	cmd := exec.CommandContext(ctx, p.name, p.args...)
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", &Error{Provider: p.Name(), Err: fmt.Errorf("%s: %s", err, msg)}
		}
		return "", &Error{Provider: p.Name(), Err: err}
	}
	return stdout.String(), nil
}

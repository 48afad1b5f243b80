package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// CommandRunner executes a provider CLI command and returns its combined
// output. Implementations must honor the context deadline.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string) (string, error)
}

// ExecRunner runs commands through the local shell environment. Output is
// truncated to MaxOutput to keep tool results within model context budgets.
type ExecRunner struct {
	Timeout   time.Duration
	MaxOutput int
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Timeout:   2 * time.Minute,
		MaxOutput: 64 * 1024,
	}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := out.String()
	if r.MaxOutput > 0 && len(output) > r.MaxOutput {
		output = output[:r.MaxOutput] + "\n... (output truncated)"
	}
	if err != nil {
		return output, fmt.Errorf("%s: %w", name, err)
	}
	return output, nil
}

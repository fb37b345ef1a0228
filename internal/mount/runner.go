package mount

import (
	"context"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
// The returned error is non-nil when the command cannot start or exits
// nonzero.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec, blocking until completion.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// trimOutput collapses command output into a single log-friendly line.
func trimOutput(out []byte) string {
	s := strings.TrimSpace(string(out))
	return strings.Join(strings.Fields(s), " ")
}

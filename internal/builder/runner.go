package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	berrors "git.home.luguber.info/inful/docsdispatch/internal/builder/errors"
	"git.home.luguber.info/inful/docsdispatch/internal/logfields"
)

// Invocation describes one generator run.
type Invocation struct {
	Command string   // generator executable, resolved via PATH
	Args    []string // full argument list, source and output dirs included
	Env     []string // extra KEY=VALUE entries appended to the process environment
}

// Runner abstracts how the documentation generator is executed. This allows
// swapping the external binary (BinaryRunner) with alternative strategies
// (no-op for tests, recording fakes) without changing dispatch logic.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExitError reports a generator that ran and exited non-zero. The dispatcher
// does not inspect or retry such failures; the code propagates to the
// process exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("generator exited with status %d", e.Code)
}

// BinaryRunner invokes the generator binary present on PATH. The child
// inherits the parent environment plus the invocation's extra entries, and
// its stdout/stderr pass through untouched.
type BinaryRunner struct{}

func (b *BinaryRunner) Run(ctx context.Context, inv Invocation) error {
	if _, err := exec.LookPath(inv.Command); err != nil {
		return fmt.Errorf("%w: %w", berrors.ErrGeneratorNotFound, err)
	}

	// #nosec G204 -- command and args come from configuration, not request input
	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Env = append(os.Environ(), inv.Env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	slog.Debug("BinaryRunner invoking generator", logfields.Command(inv.Command), slog.Any("args", inv.Args))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("%w: %w", berrors.ErrGeneratorFailed, err)
	}
	return nil
}

// NoopRunner performs no execution; useful in tests or for dry runs.
type NoopRunner struct{}

func (n *NoopRunner) Run(_ context.Context, inv Invocation) error {
	slog.Debug("NoopRunner skipping generator", logfields.Command(inv.Command))
	return nil
}

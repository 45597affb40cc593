// Package localexecutor provides a concrete, os/exec based implementation of
// the executor.Executor interface.
package localexecutor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/vk/tdbload/internal/ctxlog"
	"github.com/vk/tdbload/internal/executor"
)

// Executor starts phase tools as child processes. The child's output is
// streamed to the configured writers and never inspected.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
}

// New creates a new local executor writing child output to stdout and stderr.
func New(stdout, stderr io.Writer) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Executor{stdout: stdout, stderr: stderr}
}

var _ executor.Executor = (*Executor)(nil)

// Run starts inv.Tool with inv.Args and waits for it to exit.
func (e *Executor) Run(ctx context.Context, inv executor.Invocation) (executor.Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	outcome := executor.Outcome{Phase: inv.Phase}

	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	cmd.Stdin = nil
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	logger.Debug("Starting phase tool.", "phase", inv.Phase.String(), "tool", inv.Tool, "args", inv.Args)
	start := time.Now()
	err := cmd.Run()
	outcome.Elapsed = time.Since(start)

	if err == nil {
		logger.Debug("Phase tool exited.", "phase", inv.Phase.String(), "exit_code", 0)
		return outcome, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return outcome, fmt.Errorf("%s phase tool %q interrupted: %w", inv.Phase, inv.Tool, ctxErr)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return outcome, fmt.Errorf("failed to run %s phase tool %q: %w", inv.Phase, inv.Tool, err)
	}
	outcome.ExitCode = exitCode(exitErr)
	logger.Debug("Phase tool exited.", "phase", inv.Phase.String(), "exit_code", outcome.ExitCode)
	return outcome, nil
}

// exitCode returns the child's exit status. A child killed by a signal is
// reported the way a POSIX shell reports it: 128 plus the signal number.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return 1
}

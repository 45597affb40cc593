// Package executor defines how the pipeline runs a single phase tool.
package executor

import (
	"context"
	"time"

	"github.com/vk/tdbload/internal/model"
)

// Invocation is one phase tool call: the executable and its full argv
// (without the program name).
type Invocation struct {
	Phase model.Phase
	Tool  string
	Args  []string
}

// Outcome is what remains of a finished phase tool.
type Outcome struct {
	Phase    model.Phase
	ExitCode int
	Elapsed  time.Duration
}

// Succeeded reports whether the tool exited with status 0.
func (o Outcome) Succeeded() bool {
	return o.ExitCode == 0
}

// ElapsedSeconds returns the run time truncated to whole seconds.
func (o Outcome) ElapsedSeconds() int64 {
	return int64(o.Elapsed / time.Second)
}

// Executor runs a phase tool to completion.
//
// Run blocks until the tool terminates. A tool that ran and exited nonzero is
// reported through Outcome.ExitCode with a nil error; the error return is
// reserved for tools that could not be run at all.
type Executor interface {
	Run(ctx context.Context, inv Invocation) (Outcome, error)
}

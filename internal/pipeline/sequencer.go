package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/tdbload/internal/ctxlog"
	"github.com/vk/tdbload/internal/executor"
	"github.com/vk/tdbload/internal/model"
)

// Tools names the executables implementing each phase.
type Tools struct {
	Data  string
	Index string
}

// Default tool names, looked up through PATH when no settings override them.
const (
	DefaultDataTool  = "tdbloader2data"
	DefaultIndexTool = "tdbloader2index"
)

// For returns the executable for phase.
func (t Tools) For(phase model.Phase) string {
	switch phase {
	case model.PhaseData:
		return t.Data
	case model.PhaseIndex:
		return t.Index
	}
	panic(fmt.Sprintf("pipeline: no tool for %s", phase))
}

// Result summarizes a successful run.
type Result struct {
	Outcomes []executor.Outcome
	Elapsed  time.Duration
}

// Sequencer runs the phases selected by a RunConfig, one after another.
type Sequencer struct {
	exec    executor.Executor
	tools   Tools
	now     func() time.Time
	started time.Time
}

// NewSequencer creates a Sequencer that runs tools through exec.
func NewSequencer(exec executor.Executor, tools Tools) *Sequencer {
	return &Sequencer{exec: exec, tools: tools, now: time.Now}
}

// StartedAt sets the moment the invocation began, so the elapsed time in the
// final summary covers the work done before the first phase.
func (s *Sequencer) StartedAt(t time.Time) *Sequencer {
	s.started = t
	return s
}

// Run executes every phase of cfg.Mode in order. It returns a
// *model.PhaseFailure for the first tool that exits nonzero, and no later
// phase is started. It does not check whether the Data phase ran before an
// index-only run; that precondition belongs to the Index tool.
func (s *Sequencer) Run(ctx context.Context, cfg model.RunConfig) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	start := s.started
	if start.IsZero() {
		start = s.now()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	args := BuildArguments(cfg)
	phases := cfg.Mode.Phases()
	logger.Debug("Pipeline planned.", "mode", cfg.Mode.String(), "phases", len(phases), "location", cfg.Location)

	res := &Result{}
	for _, phase := range phases {
		inv := executor.Invocation{
			Phase: phase,
			Tool:  s.tools.For(phase),
			Args:  args.For(phase, cfg),
		}
		logger.Info("Phase started.", "phase", phase.String(), "tool", inv.Tool, "args", inv.Args)

		outcome, err := s.exec.Run(ctx, inv)
		if err != nil {
			return nil, &model.ConfigurationError{Message: fmt.Sprintf("Cannot run %s phase", phase), Err: err}
		}
		res.Outcomes = append(res.Outcomes, outcome)
		logger.Info("Phase finished.", "phase", phase.String(), "exit_code", outcome.ExitCode, "elapsed_seconds", outcome.ElapsedSeconds())

		if !outcome.Succeeded() {
			failure := &model.PhaseFailure{Phase: phase, Code: outcome.ExitCode}
			logger.Error(failure.Error())
			return nil, failure
		}
	}

	res.Elapsed = s.now().Sub(start)
	logger.Info("Finished.", "mode", cfg.Mode.String(), "elapsed_seconds", int64(res.Elapsed/time.Second))
	return res, nil
}

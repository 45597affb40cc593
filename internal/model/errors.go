package model

import (
	"errors"
	"fmt"
)

// ExitConfigError is the process exit code for every error detected by the
// controller itself, before or between phase tool invocations.
const ExitConfigError = 1

// ConfigurationError reports malformed input: unknown options, a bad phase
// value, a missing location, or a location that cannot be used.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// PhaseFailure reports that a phase tool exited with a nonzero status.
// Code is the tool's exit status, unchanged.
type PhaseFailure struct {
	Phase Phase
	Code  int
}

func (e *PhaseFailure) Error() string {
	return fmt.Sprintf("Failed during %s phase (exit code %d)", e.Phase, e.Code)
}

// ExitCode maps an error returned by the controller to the process exit code.
// A nil error is success; a PhaseFailure propagates the tool's code; anything
// else is a controller error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var failure *PhaseFailure
	if errors.As(err, &failure) && failure.Code != 0 {
		return failure.Code
	}
	return ExitConfigError
}

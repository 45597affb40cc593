package model

import "fmt"

// Phase identifies a single build step and the tool that implements it.
type Phase int

const (
	// PhaseData ingests the raw files and writes the primary representation.
	PhaseData Phase = iota
	// PhaseIndex sorts the primary representation and builds the indexes.
	PhaseIndex
)

// String returns the lower-case phase name used in logs and messages.
func (p Phase) String() string {
	switch p {
	case PhaseData:
		return "data"
	case PhaseIndex:
		return "index"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Mode selects which phases an invocation runs.
type Mode int

const (
	ModeAll Mode = iota
	ModeData
	ModeIndex
)

// DefaultMode is used when no phase was requested on the command line.
const DefaultMode = ModeAll

// ParseMode converts the value of --phase into a Mode. Only the exact names
// are accepted.
func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "all":
		return ModeAll, nil
	case "data":
		return ModeData, nil
	case "index":
		return ModeIndex, nil
	}
	return 0, &ConfigurationError{Message: fmt.Sprintf("Unrecognized phase %s", raw)}
}

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeData:
		return "data"
	case ModeIndex:
		return "index"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Phases returns the phases the mode runs, in execution order.
func (m Mode) Phases() []Phase {
	switch m {
	case ModeAll:
		return []Phase{PhaseData, PhaseIndex}
	case ModeData:
		return []Phase{PhaseData}
	case ModeIndex:
		return []Phase{PhaseIndex}
	}
	panic(fmt.Sprintf("model: unknown mode %d", int(m)))
}

// IncludesData reports whether the Data phase is part of the mode.
func (m Mode) IncludesData() bool {
	return m == ModeAll || m == ModeData
}

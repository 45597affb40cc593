package pipeline

import (
	"fmt"

	"github.com/vk/tdbload/internal/model"
)

// Arguments holds the flags derived from a RunConfig. Common goes to every
// phase tool; IndexOnly is appended for the Index phase.
type Arguments struct {
	Common    []string
	IndexOnly []string
}

// BuildArguments derives the phase tool flags. The order is fixed so that the
// same configuration always yields identical argv.
func BuildArguments(cfg model.RunConfig) Arguments {
	args := Arguments{Common: []string{}, IndexOnly: []string{}}
	if cfg.KeepWork {
		args.Common = append(args.Common, "--keep-work")
	}
	if cfg.Debug {
		args.Common = append(args.Common, "--debug")
	}
	if cfg.Trace {
		args.Common = append(args.Common, "--trace")
	}
	if cfg.JVMArgs != "" {
		args.Common = append(args.Common, "--jvm-args", cfg.JVMArgs)
	}
	if cfg.SortArgs != "" {
		args.IndexOnly = append(args.IndexOnly, "--sort-args", cfg.SortArgs)
	}
	return args
}

// For returns the complete argv for one phase tool.
//
//	data:  <common> --loc <dir> -- <files...>
//	index: <common> <index-only> --loc <dir>
func (a Arguments) For(phase model.Phase, cfg model.RunConfig) []string {
	argv := make([]string, 0, len(a.Common)+len(a.IndexOnly)+len(cfg.DataFiles)+3)
	argv = append(argv, a.Common...)
	switch phase {
	case model.PhaseData:
		argv = append(argv, "--loc", cfg.Location, "--")
		argv = append(argv, cfg.DataFiles...)
	case model.PhaseIndex:
		argv = append(argv, a.IndexOnly...)
		argv = append(argv, "--loc", cfg.Location)
	default:
		panic(fmt.Sprintf("pipeline: no arguments for %s", phase))
	}
	return argv
}

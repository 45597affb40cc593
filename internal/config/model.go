package config

import (
	"github.com/vk/tdbload/internal/model"
)

// Settings is the unified representation of every settings source. Empty
// fields mean "not set".
type Settings struct {
	DataTool  string
	IndexTool string
	JVMArgs   string
	SortArgs  string
}

// Merge overlays the non-empty fields of other onto s.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	if other.DataTool != "" {
		s.DataTool = other.DataTool
	}
	if other.IndexTool != "" {
		s.IndexTool = other.IndexTool
	}
	if other.JVMArgs != "" {
		s.JVMArgs = other.JVMArgs
	}
	if other.SortArgs != "" {
		s.SortArgs = other.SortArgs
	}
}

// ApplyTo returns a copy of run with tuning values the command line left
// unset filled from the settings.
func (s *Settings) ApplyTo(run model.RunConfig) model.RunConfig {
	out := run.Clone()
	if s == nil {
		return out
	}
	if out.JVMArgs == "" {
		out.JVMArgs = s.JVMArgs
	}
	if out.SortArgs == "" {
		out.SortArgs = s.SortArgs
	}
	return out
}

// ToolPaths returns the configured executables, falling back to defaultData
// and defaultIndex for anything unset.
func (s *Settings) ToolPaths(defaultData, defaultIndex string) (data, index string) {
	data, index = defaultData, defaultIndex
	if s == nil {
		return data, index
	}
	if s.DataTool != "" {
		data = s.DataTool
	}
	if s.IndexTool != "" {
		index = s.IndexTool
	}
	return data, index
}

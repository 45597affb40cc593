package model

import (
	"slices"
	"strings"
)

// RunConfig is the validated configuration for one invocation.
//
// JVMArgs and SortArgs are opaque to the controller; an empty string means
// the option was not given.
type RunConfig struct {
	Location  string
	Mode      Mode
	Debug     bool
	Trace     bool
	KeepWork  bool
	JVMArgs   string
	SortArgs  string
	DataFiles []string
}

// Validate checks the structural invariants of a RunConfig.
func (c RunConfig) Validate() error {
	if strings.TrimSpace(c.Location) == "" {
		return &ConfigurationError{Message: "No location specified (--loc is required)"}
	}
	if c.Mode.IncludesData() && len(c.DataFiles) == 0 {
		return &ConfigurationError{Message: "No data files"}
	}
	return nil
}

// Clone returns a copy that shares no slices with c.
func (c RunConfig) Clone() RunConfig {
	c.DataFiles = slices.Clone(c.DataFiles)
	return c
}

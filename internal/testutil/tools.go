// Package testutil provides fixtures shared by the package tests: stand-in
// phase tools written as shell scripts and a thread-safe output buffer.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// argSep separates arguments on a recorded invocation line.
const argSep = "\x1f"

// FakeTool is a shell script standing in for a phase tool. Every invocation
// appends its argv as one line to a log file, prints Stdout, and exits with
// ExitCode.
type FakeTool struct {
	Path    string
	LogPath string
}

// FakeToolOptions describes the behavior of a FakeTool.
type FakeToolOptions struct {
	ExitCode int
	Stdout   string
}

// RequireShell skips the test on platforms without /bin/sh.
func RequireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake phase tools are /bin/sh scripts")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

// NewFakeTool writes an executable script named name into dir.
func NewFakeTool(t *testing.T, dir, name string, opts FakeToolOptions) *FakeTool {
	t.Helper()
	RequireShell(t)

	tool := &FakeTool{
		Path:    filepath.Join(dir, name),
		LogPath: filepath.Join(dir, name+".calls"),
	}

	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&script, "printf '%%s\\037' \"$@\" >> '%s'\n", tool.LogPath)
	fmt.Fprintf(&script, "printf '\\n' >> '%s'\n", tool.LogPath)
	if opts.Stdout != "" {
		fmt.Fprintf(&script, "printf '%%s\\n' '%s'\n", opts.Stdout)
	}
	fmt.Fprintf(&script, "exit %d\n", opts.ExitCode)

	require.NoError(t, os.WriteFile(tool.Path, []byte(script.String()), 0o755))
	return tool
}

// Calls returns the argv of every recorded invocation, oldest first.
func (f *FakeTool) Calls(t *testing.T) [][]string {
	t.Helper()
	data, err := os.ReadFile(f.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var calls [][]string
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		line = strings.TrimSuffix(line, argSep)
		if line == "" {
			calls = append(calls, []string{})
			continue
		}
		calls = append(calls, strings.Split(line, argSep))
	}
	return calls
}

package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tdbload/internal/config"
	"github.com/vk/tdbload/internal/ctxlog"
	"github.com/vk/tdbload/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL settings loader that exposes the process
// environment to expressions as `env`.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderWithEnv creates a loader whose `env` object is built from environ
// instead of the process environment.
func NewLoaderWithEnv(environ []string) *Loader {
	return &Loader{environ: func() []string { return environ }}
}

var _ config.Loader = (*Loader)(nil)

// fileRoot is the schema of a settings file. Unknown attributes and blocks
// are rejected.
type fileRoot struct {
	DataTool  string `hcl:"data_tool,optional"`
	IndexTool string `hcl:"index_tool,optional"`
	JVMArgs   string `hcl:"jvm_args,optional"`
	SortArgs  string `hcl:"sort_args,optional"`
}

// Load parses every settings file found under paths and merges them in
// order. A path that does not exist is an error: settings are only loaded
// when the user asked for them.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	env := envObject(l.environ())
	parser := hclparse.NewParser()
	settings := &config.Settings{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"env":        env,
				"config_dir": cty.StringVal(filepath.Dir(file)),
			},
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		settings.Merge(&config.Settings{
			DataTool:  root.DataTool,
			IndexTool: root.IndexTool,
			JVMArgs:   root.JVMArgs,
			SortArgs:  root.SortArgs,
		})
	}

	logger.Debug("HCL settings loaded.", "files", len(files), "data_tool", settings.DataTool, "index_tool", settings.IndexTool)
	return settings, nil
}

// findAllHCLFiles expands directories to the .hcl files beneath them and keeps
// plain file paths as given, dropping duplicates.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing settings path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error walking settings directory %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}

// envObject converts KEY=VALUE pairs into a cty object.
func envObject(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}

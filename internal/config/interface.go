package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given files or directories. Later paths
	// override values set by earlier ones.
	Load(ctx context.Context, paths ...string) (*Settings, error)
}

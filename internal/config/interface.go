package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the manifest from the given paths and translates it into
	// the format-agnostic model. Declaration order across files follows the
	// order in which files are read.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

package config

// Model is the unified, format-agnostic representation of a capability
// manifest.
type Model struct {
	// Prefix is the C identifier prefix of the generated symbols ("lvp").
	Prefix string
	// CeilingPolicy selects how the maximum API version is derived.
	CeilingPolicy string

	APIVersions []APIVersionDecl
	Extensions  []ExtensionDecl
}

// APIVersionDecl is one authored `api_version` entry.
type APIVersionDecl struct {
	Version string
	// Enable is a bool or a platform symbol name.
	Enable any
	// Origin locates the declaration in its source file for diagnostics.
	Origin string
}

// ExtensionDecl is one authored `extension` entry.
type ExtensionDecl struct {
	Name        string
	SpecVersion int
	// Enable is a bool or a platform symbol name.
	Enable any
	Origin string
}

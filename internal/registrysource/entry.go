package registrysource

import (
	"errors"
	"fmt"
)

// ExtensionType tells whether an extension is exposed on the instance or on
// the device.
type ExtensionType string

const (
	TypeInstance ExtensionType = "instance"
	TypeDevice   ExtensionType = "device"
)

// ParseExtensionType validates a registry "type" attribute.
func ParseExtensionType(s string) (ExtensionType, error) {
	switch ExtensionType(s) {
	case TypeInstance, TypeDevice:
		return ExtensionType(s), nil
	default:
		return "", fmt.Errorf("unknown extension type %q", s)
	}
}

// CanonicalEntry is the authoritative metadata of one extension, as published
// in the registry. It supplies what the declarative manifest omits.
type CanonicalEntry struct {
	Name       string        `yaml:"name"`
	Number     int           `yaml:"number"`
	Type       ExtensionType `yaml:"type"`
	Version    int           `yaml:"version"`
	Requires   []string      `yaml:"requires,omitempty"`
	Platform   string        `yaml:"platform,omitempty"`
	PromotedTo string        `yaml:"promoted_to,omitempty"`
	Author     string        `yaml:"author,omitempty"`
}

// Validate checks the fields every consumer depends on.
func (e CanonicalEntry) Validate() error {
	if e.Name == "" {
		return errors.New("canonical entry without a name")
	}
	if e.Version <= 0 {
		return fmt.Errorf("canonical entry %q: version must be positive, got %d", e.Name, e.Version)
	}
	if _, err := ParseExtensionType(string(e.Type)); err != nil {
		return fmt.Errorf("canonical entry %q: %w", e.Name, err)
	}
	return nil
}

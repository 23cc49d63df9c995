// Package snapshot reads and writes pinned copies of the canonical registry
// as YAML. A snapshot lets a build keep using the exact registry revision it
// was validated against.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
	"github.com/specialistvlad/vkcapgen/internal/registrysource"
)

// formatVersion is bumped when the document layout changes.
const formatVersion = 1

// Document is the on-disk representation of a snapshot.
type Document struct {
	Format     int                             `yaml:"format"`
	Extensions []registrysource.CanonicalEntry `yaml:"extensions"`
}

// Decode reads a snapshot document. Unknown fields are rejected.
func Decode(r io.Reader) ([]registrysource.CanonicalEntry, error) {
	var doc Document
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding registry snapshot YAML: %w", err)
	}
	if doc.Format != formatVersion {
		return nil, fmt.Errorf("unsupported snapshot format %d (expected %d)", doc.Format, formatVersion)
	}
	for _, e := range doc.Extensions {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
	}
	return doc.Extensions, nil
}

// Load reads the snapshot at path.
func Load(ctx context.Context, path string) ([]registrysource.CanonicalEntry, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening registry snapshot %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Registry snapshot loaded.", "path", path, "extensions", len(entries))
	return entries, nil
}

// Encode writes entries as a snapshot document, sorted by name so that equal
// registries always produce equal bytes.
func Encode(w io.Writer, entries []registrysource.CanonicalEntry) error {
	sorted := append([]registrysource.CanonicalEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	enc := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
	if err := enc.Encode(Document{Format: formatVersion, Extensions: sorted}); err != nil {
		return fmt.Errorf("encoding registry snapshot: %w", err)
	}
	return enc.Close()
}

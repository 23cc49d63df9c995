package emitter

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
	"github.com/specialistvlad/vkcapgen/internal/extregistry"
	"github.com/specialistvlad/vkcapgen/internal/ledger"
	"github.com/specialistvlad/vkcapgen/internal/registrysource"
)

var cIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options configures an Emitter.
type Options struct {
	// Prefix is the lowercase C symbol prefix, e.g. "lvp".
	Prefix string
	// HeaderName is the file name the definitions artifact includes.
	// Defaults to "<prefix>_extensions.h".
	HeaderName string
	Policy     ledger.CeilingPolicy
}

// Artifacts holds the two rendered output streams.
type Artifacts struct {
	Declarations []byte
	Definitions  []byte
}

// Emitter turns a validated ledger and extension registry into artifacts.
type Emitter struct {
	source registrysource.Source
	opts   Options
}

// New creates an Emitter that cross-references extensions against source.
func New(source registrysource.Source, opts Options) (*Emitter, error) {
	if source == nil {
		return nil, fmt.Errorf("emitter: registry source is required")
	}
	if !cIdentifier.MatchString(opts.Prefix) {
		return nil, fmt.Errorf("emitter: prefix %q is not a valid C identifier", opts.Prefix)
	}
	if opts.HeaderName == "" {
		opts.HeaderName = strings.ToLower(opts.Prefix) + "_extensions.h"
	}
	return &Emitter{source: source, opts: opts}, nil
}

// Build resolves every step and extension into a CapabilityTable. It
// performs exactly one registry lookup per extension, in declaration order,
// and stops at the first failure.
func (e *Emitter) Build(ctx context.Context, l ledger.Ledger, r extregistry.Registry) (*CapabilityTable, error) {
	logger := ctxlog.FromContext(ctx)

	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := checkGuards(l, r); err != nil {
		return nil, err
	}

	ceiling, err := l.ResolveCeiling(e.opts.Policy)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(e.opts.Prefix)
	upper := strings.ToUpper(e.opts.Prefix)
	table := &CapabilityTable{
		Lower:          lower,
		Upper:          upper,
		HeaderName:     e.opts.HeaderName,
		Guard:          strings.ToUpper(identifier(filepath.Base(e.opts.HeaderName))),
		Policy:         e.opts.Policy,
		Ceiling:        ceiling,
		CeilingLiteral: versionMacro(ceiling),
	}

	for i, step := range l.Steps() {
		table.Versions = append(table.Versions, VersionEntry{
			Index:        i,
			Version:      step.Version,
			Enablement:   step.Enablement,
			Symbol:       fmt.Sprintf("%s_api_version_%s", lower, step.Version.Ident()),
			VersionMacro: versionMacro(step.Version),
		})
	}

	for i, rec := range r.Records() {
		canonical, err := e.source.Lookup(rec.Name, rec.SpecVersion)
		if err != nil {
			return nil, fmt.Errorf("extension %q (position %d): %w", rec.Name, i, err)
		}

		switch canonical.Type {
		case registrysource.TypeInstance:
			table.InstanceCount++
		case registrysource.TypeDevice:
			table.DeviceCount++
		}

		table.Extensions = append(table.Extensions, ExtensionEntry{
			Index:      i,
			Record:     rec,
			Canonical:  canonical,
			Symbol:     fmt.Sprintf("%s_extension_%s", lower, extensionIdent(rec.Name)),
			NameString: cString(rec.Name),
			TypeConst:  fmt.Sprintf("%s_EXTENSION_TYPE_%s", upper, strings.ToUpper(string(canonical.Type))),
			Requires:   requiresString(canonical.Requires),
		})
	}

	logger.Debug("Capability table built.",
		"ceiling", ceiling.String(),
		"policy", e.opts.Policy.String(),
		"api_versions", len(table.Versions),
		"instance_extensions", table.InstanceCount,
		"device_extensions", table.DeviceCount,
	)
	return table, nil
}

// checkGuards rejects guarded entries whose symbol is empty.
func checkGuards(l ledger.Ledger, r extregistry.Registry) error {
	for i, step := range l.Steps() {
		if step.Enablement.IsGuarded() && step.Enablement.Symbol() == "" {
			return &EmptyGuard{Kind: "api_version", Name: step.Version.String(), Index: i}
		}
	}
	for i, rec := range r.Records() {
		if rec.Enablement.IsGuarded() && rec.Enablement.Symbol() == "" {
			return &EmptyGuard{Kind: "extension", Name: rec.Name, Index: i}
		}
	}
	return nil
}

// Render executes the templates over table.
func (e *Emitter) Render(table *CapabilityTable) (*Artifacts, error) {
	var decl, def bytes.Buffer
	if err := templates.ExecuteTemplate(&decl, "declarations", table); err != nil {
		return nil, fmt.Errorf("rendering declarations: %w", err)
	}
	if err := templates.ExecuteTemplate(&def, "definitions", table); err != nil {
		return nil, fmt.Errorf("rendering definitions: %w", err)
	}
	return &Artifacts{Declarations: decl.Bytes(), Definitions: def.Bytes()}, nil
}

// Emit builds and renders in one step. On error no artifact is returned.
func (e *Emitter) Emit(ctx context.Context, l ledger.Ledger, r extregistry.Registry) (*Artifacts, error) {
	table, err := e.Build(ctx, l, r)
	if err != nil {
		return nil, err
	}
	return e.Render(table)
}

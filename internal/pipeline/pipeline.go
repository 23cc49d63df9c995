package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/vkcapgen/internal/config"
	"github.com/specialistvlad/vkcapgen/internal/ctxlog"
	"github.com/specialistvlad/vkcapgen/internal/emitter"
	"github.com/specialistvlad/vkcapgen/internal/extregistry"
	"github.com/specialistvlad/vkcapgen/internal/ledger"
	"github.com/specialistvlad/vkcapgen/internal/predicate"
	"github.com/specialistvlad/vkcapgen/internal/registrysource"
)

// DefaultPrefix is used when neither the manifest nor the caller sets one.
const DefaultPrefix = "vk"

// ErrAlreadyRun is returned by a second call to Run.
var ErrAlreadyRun = errors.New("pipeline has already run")

// Options override manifest-level settings. Empty fields defer to the
// manifest.
type Options struct {
	Prefix        string
	CeilingPolicy string
	HeaderName    string
}

// Pipeline compiles one manifest against one registry source.
type Pipeline struct {
	model  *config.Model
	source registrysource.Source
	opts   Options
	state  State
}

// New creates a pipeline in the Loaded state.
func New(model *config.Model, source registrysource.Source, opts Options) *Pipeline {
	return &Pipeline{model: model, source: source, opts: opts, state: StateLoaded}
}

// State returns the current stage.
func (p *Pipeline) State() State { return p.state }

// validated is the output of the Validated stage.
type validated struct {
	ledger   ledger.Ledger
	registry extregistry.Registry
	policy   ledger.CeilingPolicy
	prefix   string
}

// Run executes every stage. On failure the returned error describes the
// first offending entry, and no artifacts are returned.
func (p *Pipeline) Run(ctx context.Context) (*emitter.Artifacts, error) {
	if p.state != StateLoaded {
		return nil, ErrAlreadyRun
	}
	ctx = ctxlog.With(ctx, "component", "pipeline")

	v, err := p.validate()
	if err != nil {
		return nil, p.fail(ctx, err)
	}
	p.advance(ctx, StateValidated)

	em, err := emitter.New(p.source, emitter.Options{
		Prefix:     v.prefix,
		HeaderName: p.opts.HeaderName,
		Policy:     v.policy,
	})
	if err != nil {
		return nil, p.fail(ctx, err)
	}

	table, err := em.Build(ctx, v.ledger, v.registry)
	if err != nil {
		return nil, p.fail(ctx, err)
	}
	p.advance(ctx, StateResolved)

	artifacts, err := em.Render(table)
	if err != nil {
		return nil, p.fail(ctx, err)
	}
	p.advance(ctx, StateEmitted)

	return artifacts, nil
}

// validate resolves settings, parses versions, resolves predicates and
// checks both lists.
func (p *Pipeline) validate() (*validated, error) {
	prefix := firstNonEmpty(p.opts.Prefix, p.model.Prefix, DefaultPrefix)
	policy, err := ledger.ParseCeilingPolicy(firstNonEmpty(p.opts.CeilingPolicy, p.model.CeilingPolicy))
	if err != nil {
		return nil, err
	}

	steps := make([]ledger.Step, 0, len(p.model.APIVersions))
	for _, decl := range p.model.APIVersions {
		version, err := ledger.ParseVersion(decl.Version)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", decl.Origin, err)
		}
		steps = append(steps, ledger.Step{Version: version, Enablement: predicate.Resolve(decl.Enable)})
	}
	l := ledger.New(steps...)
	if err := l.Validate(); err != nil {
		return nil, p.locate(err)
	}

	records := make([]extregistry.Record, 0, len(p.model.Extensions))
	for _, decl := range p.model.Extensions {
		records = append(records, extregistry.Record{
			Name:        decl.Name,
			SpecVersion: decl.SpecVersion,
			Enablement:  predicate.Resolve(decl.Enable),
		})
	}
	r := extregistry.New(records...)
	if err := r.Validate(); err != nil {
		return nil, p.locate(err)
	}

	return &validated{ledger: l, registry: r, policy: policy, prefix: prefix}, nil
}

func (p *Pipeline) advance(ctx context.Context, to State) {
	if !canTransition(p.state, to) {
		panic(fmt.Sprintf("pipeline: illegal transition %s -> %s", p.state, to))
	}
	ctxlog.FromContext(ctx).Debug("Pipeline stage complete.", "from", p.state.String(), "to", to.String())
	p.state = to
}

func (p *Pipeline) fail(ctx context.Context, err error) error {
	err = p.locate(err)
	ctxlog.FromContext(ctx).Debug("Pipeline failed.", "state", p.state.String(), "error", err)
	p.advance(ctx, StateFailed)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/vkcapgen/internal/config"
)

// apiVersionBody is the body of an `api_version "<M.m.p>" { ... }` block.
type apiVersionBody struct {
	Enable hcl.Expression `hcl:"enable,optional"`
}

// extensionBody is the body of an `extension "<name>" { ... }` block.
type extensionBody struct {
	SpecVersion int            `hcl:"spec_version"`
	Enable      hcl.Expression `hcl:"enable,optional"`
}

// translateAPIVersion converts an api_version block into the agnostic model.
func translateAPIVersion(block *hcl.Block) (config.APIVersionDecl, error) {
	var body apiVersionBody
	if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
		return config.APIVersionDecl{}, fmt.Errorf("api_version %q: %w", block.Labels[0], diags)
	}

	enable, err := enableValue(body.Enable)
	if err != nil {
		return config.APIVersionDecl{}, fmt.Errorf("api_version %q at %s: %w", block.Labels[0], block.DefRange, err)
	}

	return config.APIVersionDecl{
		Version: block.Labels[0],
		Enable:  enable,
		Origin:  block.DefRange.String(),
	}, nil
}

// translateExtension converts an extension block into the agnostic model.
func translateExtension(block *hcl.Block) (config.ExtensionDecl, error) {
	var body extensionBody
	if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
		return config.ExtensionDecl{}, fmt.Errorf("extension %q: %w", block.Labels[0], diags)
	}

	enable, err := enableValue(body.Enable)
	if err != nil {
		return config.ExtensionDecl{}, fmt.Errorf("extension %q at %s: %w", block.Labels[0], block.DefRange, err)
	}

	return config.ExtensionDecl{
		Name:        block.Labels[0],
		SpecVersion: body.SpecVersion,
		Enable:      enable,
		Origin:      block.DefRange.String(),
	}, nil
}

// setting is a top-level attribute that may appear in at most one file.
type setting struct {
	value string
	rng   *hcl.Range
}

type topLevel struct {
	prefix        setting
	ceilingPolicy setting
}

func (t *topLevel) merge(attrs hcl.Attributes) error {
	targets := []struct {
		name   string
		target *setting
	}{
		{"prefix", &t.prefix},
		{"ceiling_policy", &t.ceilingPolicy},
	}
	for _, item := range targets {
		name, target := item.name, item.target
		attr, ok := attrs[name]
		if !ok {
			continue
		}

		if target.rng != nil {
			return fmt.Errorf("%s is defined at %s and again at %s", name, target.rng, attr.NameRange)
		}

		var value string
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &value); diags.HasErrors() {
			return fmt.Errorf("invalid %s: %w", name, diags)
		}
		rng := attr.NameRange
		*target = setting{value: value, rng: &rng}
	}
	return nil
}

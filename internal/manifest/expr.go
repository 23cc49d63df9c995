package manifest

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// enableValue evaluates an `enable` expression into the authored value the
// predicate resolver expects: a bool, or a symbol name string.
//
// Accepted forms are bool literals, quoted strings, numbers (used as their
// decimal text) and bare identifiers such as `VK_USE_PLATFORM_XCB_KHR`. An
// omitted or null expression means enabled.
func enableValue(expr hcl.Expression) (any, error) {
	if !exprDefined(expr) {
		return true, nil
	}

	// A bare identifier names a platform symbol. It has no value in our
	// (empty) evaluation context, so it must be caught before evaluation.
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() && len(traversal) == 1 {
		return traversal.RootName(), nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid enable expression: %w", diags)
	}
	if val.IsNull() {
		return true, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("enable must be a constant")
	}

	if val.Type() == cty.Bool {
		return val.True(), nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("enable must be a bool or a symbol name, got %s", val.Type().FriendlyName())
	}
	if strings.TrimSpace(str.AsString()) == "" {
		return nil, fmt.Errorf("enable must not be an empty symbol name")
	}
	return str.AsString(), nil
}

// exprDefined reports whether expr was written in the source. gohcl fills an
// omitted optional attribute with a zero-width placeholder expression.
func exprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	return rng.End.Byte > rng.Start.Byte
}

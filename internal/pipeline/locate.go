package pipeline

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/vkcapgen/internal/emitter"
	"github.com/specialistvlad/vkcapgen/internal/extregistry"
	"github.com/specialistvlad/vkcapgen/internal/ledger"
	"github.com/specialistvlad/vkcapgen/internal/registrysource"
)

// LocatedError attaches the manifest position of the offending entry to a
// core error. errors.Is and errors.As see through it.
type LocatedError struct {
	Origin string
	Err    error
}

func (e *LocatedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Origin, e.Err)
}

func (e *LocatedError) Unwrap() error { return e.Err }

// locate wraps err with the origin of the entry it names, when known.
func (p *Pipeline) locate(err error) error {
	var located *LocatedError
	if errors.As(err, &located) {
		return err
	}

	origin := ""
	var (
		ordering   *ledger.OrderingViolation
		duplicate  *extregistry.DuplicateName
		invalid    *extregistry.InvalidSpecVersion
		unknownExt *registrysource.UnknownExtension
		unknownVer *registrysource.UnknownVersion
		emptyGuard *emitter.EmptyGuard
	)
	switch {
	case errors.As(err, &ordering):
		origin = p.versionOrigin(ordering.Index)
	case errors.As(err, &duplicate):
		origin = p.extensionOrigin(duplicate.Index)
	case errors.As(err, &invalid):
		origin = p.extensionOriginByName(invalid.Name)
	case errors.As(err, &unknownExt):
		origin = p.extensionOriginByName(unknownExt.Name)
	case errors.As(err, &unknownVer):
		origin = p.extensionOriginByName(unknownVer.Name)
	case errors.As(err, &emptyGuard):
		if emptyGuard.Kind == "api_version" {
			origin = p.versionOrigin(emptyGuard.Index)
		} else {
			origin = p.extensionOrigin(emptyGuard.Index)
		}
	}

	if origin == "" {
		return err
	}
	return &LocatedError{Origin: origin, Err: err}
}

func (p *Pipeline) versionOrigin(i int) string {
	if i < 0 || i >= len(p.model.APIVersions) {
		return ""
	}
	return p.model.APIVersions[i].Origin
}

func (p *Pipeline) extensionOrigin(i int) string {
	if i < 0 || i >= len(p.model.Extensions) {
		return ""
	}
	return p.model.Extensions[i].Origin
}

func (p *Pipeline) extensionOriginByName(name string) string {
	for _, decl := range p.model.Extensions {
		if decl.Name == name {
			return decl.Origin
		}
	}
	return ""
}

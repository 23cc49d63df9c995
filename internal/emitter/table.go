package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/vkcapgen/internal/extregistry"
	"github.com/specialistvlad/vkcapgen/internal/ledger"
	"github.com/specialistvlad/vkcapgen/internal/predicate"
	"github.com/specialistvlad/vkcapgen/internal/registrysource"
)

// CapabilityTable is the resolved, ordered model that the templates render.
// It is built once per run and not modified afterwards.
type CapabilityTable struct {
	Lower      string
	Upper      string
	HeaderName string
	Guard      string

	Policy         ledger.CeilingPolicy
	Ceiling        ledger.Version
	CeilingLiteral string

	Versions   []VersionEntry
	Extensions []ExtensionEntry

	InstanceCount int
	DeviceCount   int
}

// VersionEntry is one resolved API version step.
type VersionEntry struct {
	Index        int
	Version      ledger.Version
	Enablement   predicate.Predicate
	Symbol       string
	VersionMacro string
}

// Guard returns the platform symbol the entry is wrapped in, or "".
func (e VersionEntry) Guard() string { return guardOf(e.Enablement) }

// Literal returns the C boolean literal of the entry's availability.
func (e VersionEntry) Literal() string { return boolLiteral(e.Enablement) }

// ExtensionEntry is one resolved extension joined with its canonical
// registry metadata.
type ExtensionEntry struct {
	Index      int
	Record     extregistry.Record
	Canonical  registrysource.CanonicalEntry
	Symbol     string
	NameString string
	TypeConst  string
	Requires   string
}

// Guard returns the platform symbol the entry is wrapped in, or "".
func (e ExtensionEntry) Guard() string { return guardOf(e.Record.Enablement) }

// Literal returns the C boolean literal of the entry's availability.
func (e ExtensionEntry) Literal() string { return boolLiteral(e.Record.Enablement) }

// guardOf returns the symbol of a guarded predicate. Build rejects guarded
// predicates with an empty symbol, so a non-empty result means guarded.
func guardOf(p predicate.Predicate) string {
	if !p.IsGuarded() {
		return ""
	}
	return p.Symbol()
}

func boolLiteral(p predicate.Predicate) string {
	if p.Literal() {
		return "true"
	}
	return "false"
}

func versionMacro(v ledger.Version) string {
	return fmt.Sprintf("VK_MAKE_VERSION(%d, %d, %d)", v.Major, v.Minor, v.Patch)
}

// identifier maps s onto a C identifier fragment by replacing every
// character outside [A-Za-z0-9_] with an underscore.
func identifier(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// extensionIdent strips the "VK_" namespace, as the driver-side tables do.
func extensionIdent(name string) string {
	return identifier(strings.TrimPrefix(name, "VK_"))
}

func cString(s string) string {
	return strconv.Quote(s)
}

func requiresString(deps []string) string {
	if len(deps) == 0 {
		return "NULL"
	}
	return cString(strings.Join(deps, ","))
}

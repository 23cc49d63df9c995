package ledger

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Largest components VK_MAKE_VERSION can pack: major and minor take 10
// bits, patch takes 12.
const (
	MaxMajor = 1<<10 - 1
	MaxMinor = 1<<10 - 1
	MaxPatch = 1<<12 - 1
)

// Version is an API version triple.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ParseVersion parses a "major.minor.patch" string. Pre-release and build
// metadata suffixes are rejected since they have no Vulkan encoding.
func ParseVersion(s string) (Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid API version %q: %w", s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return Version{}, fmt.Errorf("invalid API version %q: pre-release and metadata suffixes are not allowed", s)
	}
	if v.Major() > MaxMajor || v.Minor() > MaxMinor || v.Patch() > MaxPatch {
		return Version{}, fmt.Errorf("invalid API version %q: components are limited to %d.%d.%d",
			s, MaxMajor, MaxMinor, MaxPatch)
	}
	return Version{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()}, nil
}

// MustParseVersion is like ParseVersion but panics on error. For tests and
// static tables only.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to,
// or after other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpUint(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpUint(v.Minor, other.Minor)
	default:
		return cmpUint(v.Patch, other.Patch)
	}
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Ident renders v as an identifier fragment, e.g. "1_2_131".
func (v Version) Ident() string {
	return fmt.Sprintf("%d_%d_%d", v.Major, v.Minor, v.Patch)
}

func cmpUint(a, b uint64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

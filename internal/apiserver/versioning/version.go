package versioning

import (
	"strconv"
	"strings"
	"time"
)

// Status is the declared lifecycle stage of an API version. It is set by the
// operator in configuration and never mutated at runtime; the middleware and
// the document builder branch on it.
type Status string

const (
	StatusInternal   Status = "Internal"
	StatusPreview    Status = "Preview"
	StatusAlpha      Status = "Alpha"
	StatusBeta       Status = "Beta"
	StatusActive     Status = "Active"
	StatusCurrent    Status = "Current"
	StatusLegacy     Status = "Legacy"
	StatusDeprecated Status = "Deprecated"
	StatusSunset     Status = "Sunset"
	StatusRetired    Status = "Retired"
	StatusObsolete   Status = "Obsolete"
)

// IsDefaultCandidate returns true for the statuses that may be the
// recommended default version. Active and Current are two names for the
// same meaning.
func (s Status) IsDefaultCandidate() bool {
	return s == StatusActive || s == StatusCurrent
}

// IsEndOfLife returns true for the statuses that reject requests with 410.
// Sunset, Retired and Obsolete are kept distinct only for operator-facing
// clarity.
func (s Status) IsEndOfLife() bool {
	switch s {
	case StatusSunset, StatusRetired, StatusObsolete:
		return true
	default:
		return false
	}
}

// Header names used by the lifecycle middleware.
const (
	HeaderAPIVersion       = "X-API-Version"
	HeaderAPIVersionStatus = "X-API-Version-Status"
	HeaderAPIInfo          = "X-API-Info"
	HeaderDeprecation      = "Deprecation"
	HeaderSunset           = "Sunset"
)

// VersionInfo is one configured API version. Name is the only identity key;
// it matches the routing convention used to group handlers by version
// (e.g. "v1"). Major/minor/patch are derived from SemanticVersion on demand
// and never stored independently.
type VersionInfo struct {
	Name            string
	SemanticVersion string
	Status          Status
	DeprecationDate *time.Time
	SunsetDate      *time.Time
	Title           string
	Description     string
}

func (v VersionInfo) IsDeprecated() bool {
	return v.Status == StatusDeprecated
}

func (v VersionInfo) IsSunset() bool {
	return v.Status.IsEndOfLife()
}

// Major returns the first component of the semantic version. An unparsable
// major component defaults to 1 so that a malformed entry still resolves to
// a usable registry key.
func (v VersionInfo) Major() int {
	return semverComponent(v.SemanticVersion, 0, 1)
}

func (v VersionInfo) Minor() int {
	return semverComponent(v.SemanticVersion, 1, 0)
}

func (v VersionInfo) Patch() int {
	return semverComponent(v.SemanticVersion, 2, 0)
}

// semverComponent parses the idx-th dot-separated component. Missing
// components default to 0, unparsable components default to fallback.
func semverComponent(semver string, idx, fallback int) int {
	parts := strings.Split(semver, ".")
	if idx >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[idx]))
	if err != nil {
		return fallback
	}
	return n
}

// MajorOf derives the major component of a requested version string, which
// may carry an optional leading "v" (e.g. "2", "v2", "2.1.0"). It follows
// the same defaulting rules as VersionInfo.Major.
func MajorOf(requested string) int {
	requested = strings.TrimSpace(requested)
	if len(requested) > 0 && (requested[0] == 'v' || requested[0] == 'V') {
		requested = requested[1:]
	}
	return semverComponent(requested, 0, 1)
}

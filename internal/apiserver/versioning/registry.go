package versioning

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/verctl/verctl/internal/vcerrors"
)

// DisplayOptions is pass-through configuration for the documentation UI.
// The registry carries it but does not interpret it.
type DisplayOptions struct {
	Title   string
	Theme   string
	Layout  string
	Servers []string
}

// Registry holds the configured API versions in configuration order. It is
// constructed once at process start and immutable thereafter, so it is safe
// to read under arbitrary request concurrency without locking.
type Registry struct {
	versions []VersionInfo
	display  DisplayOptions
}

// NewRegistry builds a registry from the configured version list and
// validates its invariants. An empty list substitutes a single synthetic
// v1 / 1.0.0 / Active entry so the system always has a usable default.
func NewRegistry(versions []VersionInfo, display DisplayOptions) (*Registry, error) {
	if len(versions) == 0 {
		versions = []VersionInfo{{
			Name:            "v1",
			SemanticVersion: "1.0.0",
			Status:          StatusActive,
		}}
	}

	r := &Registry{
		versions: append([]VersionInfo(nil), versions...),
		display:  display,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate enforces the registry invariants. A violation is a configuration
// error: the process must not serve traffic with an invalid version setup.
func (r *Registry) Validate() error {
	defaults := 0
	for _, v := range r.versions {
		if v.Name == "" {
			return vcerrors.ErrVersionNameEmpty
		}
		if v.SemanticVersion == "" {
			return fmt.Errorf("version %q: %w", v.Name, vcerrors.ErrSemanticVersionEmpty)
		}
		if err := validateSemver(v.SemanticVersion); err != nil {
			return fmt.Errorf("version %q: %w", v.Name, err)
		}
		if v.Status.IsDefaultCandidate() {
			defaults++
		}
	}
	if defaults == 0 {
		return vcerrors.ErrNoDefaultVersion
	}
	if defaults > 1 {
		return vcerrors.ErrMultipleDefaultVersion
	}
	return nil
}

// Versions returns all configured versions in configuration order.
func (r *Registry) Versions() []VersionInfo {
	return append([]VersionInfo(nil), r.versions...)
}

// ActiveVersions returns the versions that still accept traffic without
// lifecycle annotations, preserving configuration order.
func (r *Registry) ActiveVersions() []VersionInfo {
	active := make([]VersionInfo, 0, len(r.versions))
	for _, v := range r.versions {
		switch v.Status {
		case StatusLegacy, StatusDeprecated, StatusSunset, StatusRetired, StatusObsolete:
			continue
		}
		active = append(active, v)
	}
	return active
}

// DefaultVersion returns the recommended default version. The registry
// invariants guarantee one exists; reaching the panic means they were
// bypassed, which is a programming error rather than a runtime condition.
func (r *Registry) DefaultVersion() VersionInfo {
	active := r.ActiveVersions()
	if len(active) == 0 {
		panic(vcerrors.ErrNoDefaultVersion)
	}
	return active[0]
}

// Lookup finds a version by name, case-insensitively.
func (r *Registry) Lookup(name string) (VersionInfo, bool) {
	for _, v := range r.versions {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return VersionInfo{}, false
}

// SortedDescending returns the versions ordered newest first by major,
// minor, patch. Used by any UI that lists available documents.
func (r *Registry) SortedDescending() []VersionInfo {
	sorted := append([]VersionInfo(nil), r.versions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Major() != b.Major() {
			return a.Major() > b.Major()
		}
		if a.Minor() != b.Minor() {
			return a.Minor() > b.Minor()
		}
		return a.Patch() > b.Patch()
	})
	return sorted
}

// Display returns the documentation UI options.
func (r *Registry) Display() DisplayOptions {
	return r.display
}

func validateSemver(semver string) error {
	parts := strings.Split(semver, ".")
	if len(parts) > 3 {
		return vcerrors.ErrSemanticVersionInvalid
	}
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return vcerrors.ErrSemanticVersionInvalid
		}
	}
	return nil
}

package versioning

import (
	"strings"

	"github.com/verctl/verctl/internal/config"
)

var allStatuses = []Status{
	StatusInternal, StatusPreview, StatusAlpha, StatusBeta,
	StatusActive, StatusCurrent, StatusLegacy, StatusDeprecated,
	StatusSunset, StatusRetired, StatusObsolete,
}

// ParseStatus normalizes a configured status string to its canonical form,
// case-insensitively. Unrecognized values are carried through unchanged;
// they behave as a pre-release stage since none of the lifecycle predicates
// match them.
func ParseStatus(s string) Status {
	for _, known := range allStatuses {
		if strings.EqualFold(string(known), s) {
			return known
		}
	}
	return Status(s)
}

// NewRegistryFromConfig builds the registry from the loaded configuration.
func NewRegistryFromConfig(cfg *config.Config) (*Registry, error) {
	versions := make([]VersionInfo, 0, len(cfg.Versions))
	for _, v := range cfg.Versions {
		versions = append(versions, VersionInfo{
			Name:            v.Name,
			SemanticVersion: v.SemanticVersion,
			Status:          ParseStatus(v.Status),
			DeprecationDate: v.DeprecationDate,
			SunsetDate:      v.SunsetDate,
			Title:           v.Title,
			Description:     v.Description,
		})
	}

	display := DisplayOptions{}
	if cfg.Display != nil {
		display = DisplayOptions{
			Title:   cfg.Display.Title,
			Theme:   cfg.Display.Theme,
			Layout:  cfg.Display.Layout,
			Servers: cfg.Display.Servers,
		}
	}

	return NewRegistry(versions, display)
}

package versioning

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Middleware creates a middleware that applies the version lifecycle policy
// per request: it resolves the requested version against the registry,
// announces its status, annotates deprecated versions with the standard
// headers, and rejects sunset versions with 410 before the wrapped handler
// runs.
func Middleware(registry *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := r.Header.Get(HeaderAPIVersion)
			if requested == "" {
				requested = registry.DefaultVersion().Name
			}
			key := "v" + strconv.Itoa(MajorOf(requested))

			version, found := registry.Lookup(key)
			if !found {
				// Truly unknown versions are rejected by the router before
				// this middleware runs; pass through unannotated.
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderAPIVersionStatus, strings.ToLower(string(version.Status)))

			if version.IsSunset() {
				writeGone(w, r, version, registry.DefaultVersion())
				return
			}

			if version.IsDeprecated() {
				w.Header().Set(HeaderDeprecation, "true")
				w.Header().Set(HeaderAPIInfo, fmt.Sprintf("Version %s is deprecated, migrate to %s", version.Name, registry.DefaultVersion().Name))
				if version.SunsetDate != nil {
					w.Header().Set(HeaderSunset, formatRFC8594Date(version.SunsetDate))
				}
			} else if version.DeprecationDate != nil {
				// Deprecation is merely scheduled: the header carries the
				// date instead of "true".
				w.Header().Set(HeaderDeprecation, formatRFC8594Date(version.DeprecationDate))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func formatRFC8594Date(t *time.Time) string {
	return t.UTC().Format(time.RFC1123)
}

package versioning

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// goneTypeURI is the stable reference for the 410 Gone problem type.
const goneTypeURI = "https://tools.ietf.org/html/rfc7231#section-6.5.9"

// Problem is an RFC 7807 problem document. It is the body of the sunset
// rejection; producing it is a terminal decision, not an error path.
type Problem struct {
	Type             string `json:"type"`
	Title            string `json:"title"`
	Status           int    `json:"status"`
	Detail           string `json:"detail"`
	Instance         string `json:"instance"`
	MigrateToVersion string `json:"migrateToVersion,omitempty"`
}

func writeGone(w http.ResponseWriter, r *http.Request, rejected, fallback VersionInfo) {
	problem := Problem{
		Type:             goneTypeURI,
		Title:            "Gone",
		Status:           http.StatusGone,
		Detail:           fmt.Sprintf("API version %s has been sunset and is no longer available.", rejected.Name),
		Instance:         r.URL.Path,
		MigrateToVersion: fallback.SemanticVersion,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusGone)
	_ = json.NewEncoder(w).Encode(problem)
}

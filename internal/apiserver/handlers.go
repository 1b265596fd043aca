package apiserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/verctl/verctl/pkg/log"
)

// versionSummary is one row of the version listing.
type versionSummary struct {
	Name            string     `json:"name"`
	Version         string     `json:"version"`
	Status          string     `json:"status"`
	Title           string     `json:"title,omitempty"`
	Description     string     `json:"description,omitempty"`
	DeprecationDate *time.Time `json:"deprecationDate,omitempty"`
	SunsetDate      *time.Time `json:"sunsetDate,omitempty"`
}

// handleListVersions lists the configured versions newest first.
func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	sorted := s.registry.SortedDescending()
	summaries := make([]versionSummary, 0, len(sorted))
	for _, v := range sorted {
		summaries = append(summaries, versionSummary{
			Name:            v.Name,
			Version:         v.SemanticVersion,
			Status:          string(v.Status),
			Title:           v.Title,
			Description:     v.Description,
			DeprecationDate: v.DeprecationDate,
			SunsetDate:      v.SunsetDate,
		})
	}
	s.writeJSON(w, r, summaries)
}

// handleDocument serves the contract document built for one version. The
// documents map is immutable after startup, so no locking is needed here.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "version")
	version, found := s.registry.Lookup(name)
	if !found {
		http.Error(w, "unknown API version", http.StatusNotFound)
		return
	}
	doc, found := s.documents.Get(version.Name)
	if !found {
		http.Error(w, "no contract document for this version", http.StatusNotFound)
		return
	}
	s.writeJSON(w, r, doc)
}

// handleDisplayOptions passes the documentation UI configuration through to
// the renderer.
func (s *Server) handleDisplayOptions(w http.ResponseWriter, r *http.Request) {
	display := s.registry.Display()
	s.writeJSON(w, r, map[string]any{
		"title":   display.Title,
		"theme":   display.Theme,
		"layout":  display.Layout,
		"servers": display.Servers,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithReqIDFromCtx(r.Context(), s.log).Errorf("encoding response: %v", err)
	}
}

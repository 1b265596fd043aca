package apiserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verctl/verctl/internal/apiserver/versioning"
	"github.com/verctl/verctl/internal/catalog"
	"github.com/verctl/verctl/internal/contract"
	"github.com/verctl/verctl/pkg/log"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	registry, err := versioning.NewRegistry([]versioning.VersionInfo{
		{Name: "v1", SemanticVersion: "1.0.0", Status: versioning.StatusDeprecated},
		{Name: "v3", SemanticVersion: "3.1.0", Status: versioning.StatusActive},
		{Name: "v2", SemanticVersion: "2.0.0", Status: versioning.StatusLegacy},
	}, versioning.DisplayOptions{Title: "Test API", Theme: "dark"})
	require.NoError(t, err)

	builder := contract.NewBuilder(registry)
	catalog.Register(builder)
	documents, err := builder.BuildAll()
	require.NoError(t, err)

	return New(log.InitLogs(), nil, registry, documents, nil)
}

func withChiURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleListVersions_NewestFirst(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/versions", nil)
	rec := httptest.NewRecorder()
	server.handleListVersions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []versionSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summaries))
	require.Len(t, summaries, 3)

	assert.Equal(t, "v3", summaries[0].Name)
	assert.Equal(t, "v2", summaries[1].Name)
	assert.Equal(t, "v1", summaries[2].Name)
	assert.Equal(t, "Active", summaries[0].Status)
}

func TestHandleDocument(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/openapi.json", nil)
	req = withChiURLParam(req, "version", "v1")
	rec := httptest.NewRecorder()
	server.handleDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	assert.Equal(t, "v1.0.0 (Deprecated)", doc.Info.Version)
}

func TestHandleDocument_LookupIsCaseInsensitive(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/V1/openapi.json", nil)
	req = withChiURLParam(req, "version", "V1")
	rec := httptest.NewRecorder()
	server.handleDocument(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDocument_UnknownVersion(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v9/openapi.json", nil)
	req = withChiURLParam(req, "version", "v9")
	rec := httptest.NewRecorder()
	server.handleDocument(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDisplayOptions(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/docs", nil)
	rec := httptest.NewRecorder()
	server.handleDisplayOptions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var display map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&display))
	assert.Equal(t, "Test API", display["title"])
	assert.Equal(t, "dark", display["theme"])
}

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verctl/verctl/internal/apiserver/versioning"
	"github.com/verctl/verctl/internal/rules"
)

type account struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int32  `json:"role"`
}

func newTestRegistry(t *testing.T) *versioning.Registry {
	t.Helper()
	registry, err := versioning.NewRegistry([]versioning.VersionInfo{
		{Name: "v1", SemanticVersion: "1.0.0", Status: versioning.StatusDeprecated, Title: "Accounts API"},
		{Name: "v2", SemanticVersion: "2.0.0", Status: versioning.StatusActive},
	}, versioning.DisplayOptions{
		Title:   "Test API",
		Servers: []string{"https://api.example.com"},
	})
	require.NoError(t, err)
	return registry
}

func accountShape() Shape {
	return Shape{
		Name:   "Account",
		Sample: account{},
		Enums: map[string][]string{
			"role": {"User", "Admin"},
		},
		Rules: rules.Descriptor{
			"Name":  {rules.NotEmpty(), rules.MaxLength(200)},
			"Email": {rules.Email()},
		},
		Parameters: []Parameter{
			{
				Name:   "limit",
				In:     "query",
				Sample: int32(0),
				Rules:  []rules.Rule{rules.NotEmpty(), rules.Between(1, 1000)},
			},
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	builder := NewBuilder(newTestRegistry(t))
	builder.RegisterShapes("v1", accountShape())

	version, found := newTestRegistry(t).Lookup("v1")
	require.True(t, found)

	doc, err := builder.Build(version)
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0 (Deprecated)", doc.Info.Version)
	assert.Equal(t, "Accounts API", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com", doc.Servers[0].URL)

	schemaRef, ok := doc.Components.Schemas["Account"]
	require.True(t, ok)
	schema := schemaRef.Value

	assert.Contains(t, schema.Required, "Name")
	nameProp := schema.Properties["name"].Value
	require.NotNil(t, nameProp.MaxLength)
	assert.Equal(t, uint64(200), *nameProp.MaxLength)
	assert.Equal(t, "email", schema.Properties["email"].Value.Format)

	// the enum projection rewrites the reflected integer to strings
	roleProp := schema.Properties["role"].Value
	require.NotNil(t, roleProp.Type)
	assert.True(t, roleProp.Type.Includes("string"))
	assert.Equal(t, []any{"user", "admin"}, roleProp.Enum)

	paramRef, ok := doc.Components.Parameters["AccountLimit"]
	require.True(t, ok)
	assert.True(t, paramRef.Value.Required)
	require.NotNil(t, paramRef.Value.Schema.Value.Min)
	assert.Equal(t, 1.0, *paramRef.Value.Schema.Value.Min)
}

func TestBuilder_BuildAll(t *testing.T) {
	registry := newTestRegistry(t)
	builder := NewBuilder(registry)
	builder.RegisterShapes("v1", accountShape())
	builder.RegisterShapes("v2", accountShape())

	docs, err := builder.BuildAll()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	v1, ok := docs.Get("v1")
	require.True(t, ok)
	assert.Equal(t, "v1.0.0 (Deprecated)", v1.Info.Version)

	v2, ok := docs.Get("v2")
	require.True(t, ok)
	assert.Equal(t, "v2.0.0 (Active)", v2.Info.Version)
	// v2 has no per-version title, the display title applies
	assert.Equal(t, "Test API", v2.Info.Title)
}

func TestBuilder_VersionWithoutShapesBuildsEmptyDocument(t *testing.T) {
	registry := newTestRegistry(t)
	builder := NewBuilder(registry)

	docs, err := builder.BuildAll()
	require.NoError(t, err)

	doc, ok := docs.Get("v2")
	require.True(t, ok)
	assert.Empty(t, doc.Components.Schemas)
}

func TestBuilder_NilSampleFails(t *testing.T) {
	registry := newTestRegistry(t)
	builder := NewBuilder(registry)
	builder.RegisterShapes("v1", Shape{Name: "Broken"})

	_, err := builder.BuildAll()
	assert.Error(t, err)
}

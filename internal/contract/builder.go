package contract

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/stoewer/go-strcase"

	"github.com/verctl/verctl/internal/apiserver/versioning"
	"github.com/verctl/verctl/internal/rules"
	"github.com/verctl/verctl/internal/vcerrors"
)

// Parameter is one externally-bound request parameter of a shape, with the
// validation rules that apply to it.
type Parameter struct {
	Name   string
	In     string
	Sample any
	Rules  []rules.Rule
}

// Shape is one request/response data shape registered for a version. Sample
// drives the reflection-based base schema; Enums names the enum member
// names per property for the enum-as-string projection.
type Shape struct {
	Name       string
	Sample     any
	Enums      map[string][]string
	Rules      rules.Descriptor
	Parameters []Parameter
}

// Documents is the set of finished contracts keyed by version name. It is
// built once during single-threaded startup and immutable afterwards; a
// configuration change requires a process restart.
type Documents map[string]*openapi3.T

// Get returns the contract for a configured version name.
func (d Documents) Get(name string) (*openapi3.T, bool) {
	doc, ok := d[name]
	return doc, ok
}

// Builder assembles one contract document per configured version. Shape
// registration doubles as rule-registry population, so descriptor lookup is
// an explicit map instead of runtime reflection.
type Builder struct {
	registry *versioning.Registry
	rules    *rules.Registry
	shapes   map[string][]Shape
}

func NewBuilder(registry *versioning.Registry) *Builder {
	return &Builder{
		registry: registry,
		rules:    rules.NewRegistry(),
		shapes:   map[string][]Shape{},
	}
}

// RegisterShapes binds shapes to a version name and records their rule
// descriptors in the rule registry.
func (b *Builder) RegisterShapes(version string, shapes ...Shape) {
	for _, shape := range shapes {
		if shape.Rules != nil {
			b.rules.Register(shape.Name, shape.Rules)
		}
	}
	b.shapes[version] = append(b.shapes[version], shapes...)
}

// BuildAll assembles the contract for every configured version. Building is
// a pure function of configuration, so the result can be cached for the
// process lifetime.
func (b *Builder) BuildAll() (Documents, error) {
	docs := make(Documents, len(b.registry.Versions()))
	for _, version := range b.registry.Versions() {
		doc, err := b.Build(version)
		if err != nil {
			return nil, fmt.Errorf("building contract for %s: %w", version.Name, err)
		}
		docs[version.Name] = doc
	}
	return docs, nil
}

// Build assembles the contract document for a single version: base schemas
// by reflection, then the type fixers, then the rule projection. The fixers
// and the rule table touch disjoint schema facets, so their order does not
// matter.
func (b *Builder) Build(version versioning.VersionInfo) (*openapi3.T, error) {
	schemas := openapi3.Schemas{}
	parameters := openapi3.ParametersMap{}

	for _, shape := range b.shapes[version.Name] {
		if shape.Sample == nil {
			return nil, fmt.Errorf("shape %s: %w", shape.Name, vcerrors.ErrShapeSampleIsNil)
		}

		ref, err := openapi3gen.NewSchemaRefForValue(shape.Sample, nil)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", shape.Name, err)
		}

		FixNumericTypes(ref.Value)
		for property, members := range shape.Enums {
			if propRef, ok := ref.Value.Properties[property]; ok && propRef != nil {
				FixEnumAsString(propRef.Value, members)
			}
		}
		if desc, ok := b.rules.Lookup(shape.Name); ok {
			rules.ApplyToObject(desc, ref.Value)
		}
		schemas[shape.Name] = ref

		for _, p := range shape.Parameters {
			paramRef, err := b.buildParameter(shape, p)
			if err != nil {
				return nil, err
			}
			parameters[shape.Name+strcase.UpperCamelCase(p.Name)] = paramRef
		}
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    b.info(version),
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas:    schemas,
			Parameters: parameters,
		},
	}
	for _, url := range b.registry.Display().Servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: url})
	}
	return doc, nil
}

func (b *Builder) buildParameter(shape Shape, p Parameter) (*openapi3.ParameterRef, error) {
	schemaRef, err := openapi3gen.NewSchemaRefForValue(p.Sample, nil)
	if err != nil {
		return nil, fmt.Errorf("shape %s parameter %s: %w", shape.Name, p.Name, err)
	}
	FixNumericTypes(schemaRef.Value)

	param := &openapi3.Parameter{
		Name:   p.Name,
		In:     p.In,
		Schema: schemaRef,
	}
	rules.ApplyToParameter(p.Rules, param)
	return &openapi3.ParameterRef{Value: param}, nil
}

func (b *Builder) info(version versioning.VersionInfo) *openapi3.Info {
	title := version.Title
	if title == "" {
		title = b.registry.Display().Title
	}
	return &openapi3.Info{
		Title:       title,
		Description: version.Description,
		Version:     fmt.Sprintf("v%s (%s)", version.SemanticVersion, version.Status),
	}
}

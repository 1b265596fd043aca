package versioning

import (
	"errors"
	"testing"

	"github.com/verctl/verctl/internal/vcerrors"
)

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name     string
		versions []VersionInfo
		wantErr  error
	}{
		{
			name: "single active entry succeeds",
			versions: []VersionInfo{
				{Name: "v1", SemanticVersion: "1.0.0", Status: StatusActive},
			},
			wantErr: nil,
		},
		{
			name: "current counts as the default",
			versions: []VersionInfo{
				{Name: "v1", SemanticVersion: "1.0.0", Status: StatusDeprecated},
				{Name: "v2", SemanticVersion: "2.0.0", Status: StatusCurrent},
			},
			wantErr: nil,
		},
		{
			name: "no active entry fails",
			versions: []VersionInfo{
				{Name: "v1", SemanticVersion: "1.0.0", Status: StatusDeprecated},
			},
			wantErr: vcerrors.ErrNoDefaultVersion,
		},
		{
			name: "two active entries fail",
			versions: []VersionInfo{
				{Name: "v1", SemanticVersion: "1.0.0", Status: StatusActive},
				{Name: "v2", SemanticVersion: "2.0.0", Status: StatusCurrent},
			},
			wantErr: vcerrors.ErrMultipleDefaultVersion,
		},
		{
			name: "empty name fails",
			versions: []VersionInfo{
				{Name: "", SemanticVersion: "1.0.0", Status: StatusActive},
			},
			wantErr: vcerrors.ErrVersionNameEmpty,
		},
		{
			name: "empty semantic version fails",
			versions: []VersionInfo{
				{Name: "v1", SemanticVersion: "", Status: StatusActive},
			},
			wantErr: vcerrors.ErrSemanticVersionEmpty,
		},
		{
			name: "non-numeric semantic version fails",
			versions: []VersionInfo{
				{Name: "v1", SemanticVersion: "1.beta.0", Status: StatusActive},
			},
			wantErr: vcerrors.ErrSemanticVersionInvalid,
		},
		{
			name: "more than three components fail",
			versions: []VersionInfo{
				{Name: "v1", SemanticVersion: "1.0.0.0", Status: StatusActive},
			},
			wantErr: vcerrors.ErrSemanticVersionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.versions, DisplayOptions{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRegistry_EmptyListSubstitutesSynthetic(t *testing.T) {
	registry, err := NewRegistry(nil, DisplayOptions{})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	versions := registry.Versions()
	if len(versions) != 1 {
		t.Fatalf("len(Versions()) = %v, want 1", len(versions))
	}
	v := versions[0]
	if v.Name != "v1" || v.SemanticVersion != "1.0.0" || v.Status != StatusActive {
		t.Errorf("synthetic version = %+v, want v1 / 1.0.0 / Active", v)
	}
	if registry.DefaultVersion().Name != "v1" {
		t.Errorf("DefaultVersion().Name = %v, want v1", registry.DefaultVersion().Name)
	}
}

func TestRegistry_DefaultVersion(t *testing.T) {
	registry, err := NewRegistry([]VersionInfo{
		{Name: "v1", SemanticVersion: "1.0.0", Status: StatusDeprecated},
		{Name: "v2", SemanticVersion: "2.0.0", Status: StatusActive},
		{Name: "v3", SemanticVersion: "3.0.0", Status: StatusBeta},
	}, DisplayOptions{})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if got := registry.DefaultVersion().Name; got != "v2" {
		t.Errorf("DefaultVersion().Name = %v, want v2", got)
	}

	active := registry.ActiveVersions()
	if len(active) != 2 {
		t.Fatalf("len(ActiveVersions()) = %v, want 2", len(active))
	}
	if active[0].Name != "v2" || active[1].Name != "v3" {
		t.Errorf("ActiveVersions() order = %v, %v; want v2, v3", active[0].Name, active[1].Name)
	}
}

func TestRegistry_LookupCaseInsensitive(t *testing.T) {
	registry, err := NewRegistry([]VersionInfo{
		{Name: "v1", SemanticVersion: "1.0.0", Status: StatusActive},
	}, DisplayOptions{})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if _, found := registry.Lookup("V1"); !found {
		t.Error("Lookup(V1) not found, want found")
	}
	if _, found := registry.Lookup("v1"); !found {
		t.Error("Lookup(v1) not found, want found")
	}
	if _, found := registry.Lookup("v9"); found {
		t.Error("Lookup(v9) found, want not found")
	}
}

func TestRegistry_SortedDescending(t *testing.T) {
	registry, err := NewRegistry([]VersionInfo{
		{Name: "v1", SemanticVersion: "1.0.0", Status: StatusDeprecated},
		{Name: "v3", SemanticVersion: "3.1.0", Status: StatusActive},
		{Name: "v2", SemanticVersion: "2.0.0", Status: StatusLegacy},
	}, DisplayOptions{})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	sorted := registry.SortedDescending()
	want := []string{"v3", "v2", "v1"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("SortedDescending()[%d].Name = %v, want %v", i, sorted[i].Name, name)
		}
	}
}

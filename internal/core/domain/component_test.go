package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/fanout/internal/core/domain"
)

func sampleDocument() domain.Document {
	return domain.Document{
		"name": "Button",
		"state": map[string]any{
			"count": 1.0,
			"tags":  []any{"a", "b"},
		},
		"children": []any{
			map[string]any{"name": "span", "bindings": map[string]any{"text": "label"}},
		},
		"imports": []string{"./icon.lite"},
	}
}

func TestDocument_CloneIsDeep(t *testing.T) {
	original := sampleDocument()
	clone := original.Clone()

	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}

	clone["name"] = "Changed"
	clone["state"].(map[string]any)["count"] = 2.0
	clone["state"].(map[string]any)["tags"].([]any)[0] = "z"
	clone["children"].([]any)[0].(map[string]any)["bindings"].(map[string]any)["text"] = "other"
	clone["imports"].([]string)[0] = "./other.lite"

	if diff := cmp.Diff(sampleDocument(), original); diff != "" {
		t.Errorf("mutating the clone leaked into the original (-want +got):\n%s", diff)
	}
}

func TestDocument_CloneNil(t *testing.T) {
	var doc domain.Document
	assert.Nil(t, doc.Clone())
}

func TestCloneComponents(t *testing.T) {
	components := []domain.Component{
		{Path: "a.lite.tsx", Doc: sampleDocument()},
		{Path: "b.lite.tsx", Doc: domain.Document{"name": "B"}},
	}

	clones := domain.CloneComponents(components)
	assert.Len(t, clones, 2)
	assert.Equal(t, "a.lite.tsx", clones[0].Path)

	clones[1].Doc["name"] = "Mutated"
	assert.Equal(t, "B", components[1].Doc["name"])
}

func TestBuildOptions_Defaults(t *testing.T) {
	opts := domain.DefaultBuildOptions("/work")

	assert.Equal(t, "output", opts.Dest)
	assert.Equal(t, "src/*", opts.Files)
	assert.Equal(t, "overrides", opts.OverridesDir)
	assert.Equal(t, "lite.tsx", opts.Extension)
	assert.Positive(t, opts.Concurrency)
	assert.Equal(t, "/work/output", opts.DestDir())
	assert.Equal(t, "/work/overrides", opts.OverridesRoot())
	assert.Equal(t, "/abs/dir", opts.Resolve("/abs/dir"))
	assert.False(t, opts.TargetOptions("react").TypeScript)
}

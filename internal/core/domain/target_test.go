package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/core/domain"
)

func TestTargetTable_Complete(t *testing.T) {
	for _, target := range domain.AllTargets() {
		spec := target.Spec()
		assert.NotEmpty(t, spec.Name, "target %d has no name", target)
		assert.NotEmpty(t, spec.Segment, "target %s has no segment", spec.Name)
		assert.NotEmpty(t, spec.Extension, "target %s has no extension", spec.Name)
		assert.Equal(t, spec.Canonical, spec.Canonical.Canonical(), "alias %s must point at a canonical target", spec.Name)
	}
}

func TestTarget_Segments(t *testing.T) {
	tests := []struct {
		name    string
		segment string
	}{
		{"react", "react"},
		{"vue2", "vue/vue2"},
		{"vue3", "vue/vue3"},
		{"vue", "vue/vue3"},
		{"react-native", "react-native"},
		{"custom-element", "custom-element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := domain.ParseTarget(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.segment, target.Segment())
			assert.Equal(t, tt.name, target.String())
		})
	}
}

func TestTarget_VueAlias(t *testing.T) {
	vue, err := domain.ParseTarget("vue")
	require.NoError(t, err)

	assert.True(t, vue.IsAlias())
	assert.Equal(t, domain.TargetVue3, vue.Canonical())
	assert.NotEmpty(t, vue.Spec().Diagnostic)
	assert.Equal(t, domain.TargetVue3.Segment(), vue.Segment())

	assert.False(t, domain.TargetVue3.IsAlias())
	assert.Empty(t, domain.TargetVue3.Spec().Diagnostic)
}

func TestTarget_PostProcess(t *testing.T) {
	assert.Equal(t, domain.PostProcessSolid, domain.TargetSolid.Spec().PostProcess)
	assert.Equal(t, domain.PostProcessTranspile, domain.TargetReact.Spec().PostProcess)
	assert.Equal(t, domain.PostProcessTranspile, domain.TargetWebComponent.Spec().PostProcess)
	assert.Equal(t, domain.PostProcessNone, domain.TargetVue3.Spec().PostProcess)
	assert.Equal(t, domain.PostProcessNone, domain.TargetSwift.Spec().PostProcess)
}

func TestParseTarget_Unsupported(t *testing.T) {
	_, err := domain.ParseTarget("ember")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedTarget))
	assert.Contains(t, err.Error(), "unsupported target")
}

func TestTargetNames_Sorted(t *testing.T) {
	names := domain.TargetNames()
	assert.Len(t, names, len(domain.AllTargets()))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "vue")
}

func TestTarget_OutOfRange(t *testing.T) {
	bogus := domain.Target(200)
	assert.Equal(t, "Target(200)", bogus.String())
	assert.Empty(t, bogus.Segment())
	assert.False(t, bogus.IsAlias())
}

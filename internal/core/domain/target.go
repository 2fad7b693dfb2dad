package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// Target identifies one platform backend the pipeline can emit source for.
type Target uint8

const (
	// TargetReact emits React components.
	TargetReact Target = iota
	// TargetPreact emits Preact components.
	TargetPreact
	// TargetReactNative emits React Native components.
	TargetReactNative
	// TargetSolid emits SolidJS components.
	TargetSolid
	// TargetQwik emits Qwik components.
	TargetQwik
	// TargetVue is the unversioned Vue alias. It resolves to TargetVue3.
	TargetVue
	// TargetVue2 emits Vue 2 single file components.
	TargetVue2
	// TargetVue3 emits Vue 3 single file components.
	TargetVue3
	// TargetSvelte emits Svelte components.
	TargetSvelte
	// TargetAngular emits Angular components.
	TargetAngular
	// TargetHTML emits plain HTML.
	TargetHTML
	// TargetCustomElement emits custom element classes.
	TargetCustomElement
	// TargetWebComponent emits web components.
	TargetWebComponent
	// TargetMarko emits Marko templates.
	TargetMarko
	// TargetLit emits Lit elements.
	TargetLit
	// TargetSwift emits SwiftUI views.
	TargetSwift

	targetCount
)

// PostProcess selects the per-target rewrite applied to generated text.
type PostProcess uint8

const (
	// PostProcessNone leaves generated text untouched.
	PostProcessNone PostProcess = iota
	// PostProcessTranspile runs the generic transpile and import rewrite step.
	PostProcessTranspile
	// PostProcessSolid runs the dedicated Solid source-to-source rewrite.
	PostProcessSolid
)

// TargetSpec is one row of the target lookup table.
type TargetSpec struct {
	// Name is the configuration identifier, e.g. "react".
	Name string
	// Segment is the output directory below dest, e.g. "vue/vue3".
	Segment string
	// Extension is the native file extension including the dot.
	Extension string
	// PostProcess selects the rewrite applied after generation.
	PostProcess PostProcess
	// Canonical is the target whose generator serves this one. Equal to the
	// target itself unless the row is an alias.
	Canonical Target
	// Diagnostic is emitted whenever an alias row is resolved.
	Diagnostic string
}

var targetSpecs = [targetCount]TargetSpec{
	TargetReact:         {Name: "react", Segment: "react", Extension: ".jsx", PostProcess: PostProcessTranspile, Canonical: TargetReact},
	TargetPreact:        {Name: "preact", Segment: "preact", Extension: ".jsx", PostProcess: PostProcessTranspile, Canonical: TargetPreact},
	TargetReactNative:   {Name: "react-native", Segment: "react-native", Extension: ".jsx", PostProcess: PostProcessTranspile, Canonical: TargetReactNative},
	TargetSolid:         {Name: "solid", Segment: "solid", Extension: ".jsx", PostProcess: PostProcessSolid, Canonical: TargetSolid},
	TargetQwik:          {Name: "qwik", Segment: "qwik", Extension: ".jsx", Canonical: TargetQwik},
	TargetVue:           {Name: "vue", Segment: "vue/vue3", Extension: ".vue", Canonical: TargetVue3, Diagnostic: "no vue version specified, defaulting to vue3"},
	TargetVue2:          {Name: "vue2", Segment: "vue/vue2", Extension: ".vue", Canonical: TargetVue2},
	TargetVue3:          {Name: "vue3", Segment: "vue/vue3", Extension: ".vue", Canonical: TargetVue3},
	TargetSvelte:        {Name: "svelte", Segment: "svelte", Extension: ".svelte", Canonical: TargetSvelte},
	TargetAngular:       {Name: "angular", Segment: "angular", Extension: ".ts", Canonical: TargetAngular},
	TargetHTML:          {Name: "html", Segment: "html", Extension: ".html", PostProcess: PostProcessTranspile, Canonical: TargetHTML},
	TargetCustomElement: {Name: "custom-element", Segment: "custom-element", Extension: ".js", Canonical: TargetCustomElement},
	TargetWebComponent:  {Name: "web-component", Segment: "web-component", Extension: ".js", PostProcess: PostProcessTranspile, Canonical: TargetWebComponent},
	TargetMarko:         {Name: "marko", Segment: "marko", Extension: ".marko", Canonical: TargetMarko},
	TargetLit:           {Name: "lit", Segment: "lit", Extension: ".ts", Canonical: TargetLit},
	TargetSwift:         {Name: "swift", Segment: "swift", Extension: ".swift", Canonical: TargetSwift},
}

var targetsByName = make(map[string]Target, targetCount)

func init() {
	for t := range targetCount {
		spec := targetSpecs[t]
		if spec.Name == "" || spec.Segment == "" || spec.Extension == "" {
			panic(fmt.Sprintf("domain: target %d has no table entry", t))
		}
		targetsByName[spec.Name] = t
	}
}

// ParseTarget resolves a configuration identifier to a Target.
func ParseTarget(name string) (Target, error) {
	t, ok := targetsByName[name]
	if !ok {
		return 0, zerr.With(zerr.Wrap(ErrUnsupportedTarget, "failed to resolve target"), "target", name)
	}
	return t, nil
}

// AllTargets returns every known target in declaration order.
func AllTargets() []Target {
	all := make([]Target, 0, targetCount)
	for t := range targetCount {
		all = append(all, t)
	}
	return all
}

// TargetNames returns the sorted configuration identifiers of every target.
func TargetNames() []string {
	names := make([]string, 0, targetCount)
	for _, spec := range targetSpecs {
		names = append(names, spec.Name)
	}
	slices.Sort(names)
	return names
}

// Spec returns the lookup table row for the target.
func (t Target) Spec() TargetSpec {
	if t >= targetCount {
		return TargetSpec{}
	}
	return targetSpecs[t]
}

// String returns the configuration identifier of the target.
func (t Target) String() string {
	if t >= targetCount {
		return fmt.Sprintf("Target(%d)", t)
	}
	return targetSpecs[t].Name
}

// Segment returns the output path segment of the target.
func (t Target) Segment() string {
	return t.Spec().Segment
}

// Canonical returns the target whose generator serves t.
func (t Target) Canonical() Target {
	return t.Spec().Canonical
}

// IsAlias reports whether t resolves to another target.
func (t Target) IsAlias() bool {
	return t < targetCount && t.Canonical() != t
}

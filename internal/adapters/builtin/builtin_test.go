package builtin_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/adapters/builtin"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

const buttonSource = `import { useState } from "@builder.io/mitosis";
import Icon from "./icon.lite";
import theme from "./theme.context.lite";

export default function Button() {
  return <button className="btn">ok</button>;
}
`

func TestParser_Parse(t *testing.T) {
	p := builtin.NewParser()

	doc, err := p.Parse(t.Context(), "controls/button.lite.tsx", []byte(buttonSource))
	require.NoError(t, err)

	want := domain.Document{
		builtin.KeyName:    "button",
		builtin.KeyPath:    "controls/button.lite.tsx",
		builtin.KeySource:  buttonSource,
		builtin.KeyImports: []any{"@builder.io/mitosis", "./icon.lite", "./theme.context.lite"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Parse_Invalid(t *testing.T) {
	p := builtin.NewParser()

	_, err := p.Parse(t.Context(), "empty.lite.tsx", []byte("  \n"))
	require.Error(t, err)

	_, err = p.Parse(t.Context(), "binary.lite.tsx", []byte{0xff, 0xfe, 0x00})
	require.Error(t, err)
}

func TestGenerator_Generate(t *testing.T) {
	g, err := builtin.NewGenerator(domain.TargetReact, domain.TargetOptions{
		Knobs: map[string]any{"banner": "generated\ndo not edit", "prettier": true},
	})
	require.NoError(t, err)

	out, err := g.Generate(t.Context(), "button.lite.tsx", domain.Document{builtin.KeySource: "export default 1;\n"})
	require.NoError(t, err)
	assert.Equal(t, "// generated\n// do not edit\nexport default 1;\n", out)

	_, err = g.Generate(t.Context(), "button.lite.tsx", domain.Document{})
	require.Error(t, err)
}

func TestGenerator_RewritesImports(t *testing.T) {
	doc := domain.Document{builtin.KeySource: "import Icon from \"./icon.lite\";\nimport theme from \"./theme.context.lite\";\nimport x from \"lib\";\n"}

	tests := []struct {
		target domain.Target
		want   string
	}{
		{domain.TargetReact, "import Icon from \"./icon\";\nimport theme from \"./theme\";\nimport x from \"lib\";\n"},
		{domain.TargetVue3, "import Icon from \"./icon.vue\";\nimport theme from \"./theme\";\nimport x from \"lib\";\n"},
		{domain.TargetSvelte, "import Icon from \"./icon.svelte\";\nimport theme from \"./theme\";\nimport x from \"lib\";\n"},
		{domain.TargetMarko, "import Icon from \"./icon.marko\";\nimport theme from \"./theme\";\nimport x from \"lib\";\n"},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			g, err := builtin.NewGenerator(tt.target, domain.TargetOptions{})
			require.NoError(t, err)

			out, err := g.Generate(t.Context(), "button.lite.tsx", doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNewGenerator_MalformedBanner(t *testing.T) {
	_, err := builtin.NewGenerator(domain.TargetVue3, domain.TargetOptions{
		Knobs: map[string]any{"banner": 42},
	})
	require.ErrorIs(t, err, domain.ErrInvalidTargetOptions)
}

func TestImportRewriter(t *testing.T) {
	tests := []struct {
		name   string
		target domain.Target
		in     string
		want   string
	}{
		{
			name:   "component import for jsx target",
			target: domain.TargetReact,
			in:     `import Icon from "./icon.lite";`,
			want:   `import Icon from "./icon";`,
		},
		{
			name:   "component import for single file component target",
			target: domain.TargetVue3,
			in:     `import Icon from './icon.lite';`,
			want:   `import Icon from './icon.vue';`,
		},
		{
			name:   "context import",
			target: domain.TargetSvelte,
			in:     `import theme from "../theme.context.lite";`,
			want:   `import theme from "../theme";`,
		},
		{
			name:   "dynamic import",
			target: domain.TargetReact,
			in:     `const m = import("./lazy.lite");`,
			want:   `const m = import("./lazy");`,
		},
		{
			name:   "package import untouched",
			target: domain.TargetReact,
			in:     `import { x } from "pkg.lite";`,
			want:   `import { x } from "pkg.lite";`,
		},
		{
			name:   "plain relative import untouched",
			target: domain.TargetReact,
			in:     `import util from "./util";`,
			want:   `import util from "./util";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builtin.ImportRewriter(tt.target)(tt.in))
		})
	}
}

func TestTranspiler_Transpile(t *testing.T) {
	tr := builtin.NewTranspiler()
	in := "import type { Props } from \"./types\";\nimport Icon from \"./icon.lite\";\n"

	untyped, err := tr.Transpile(t.Context(), ports.TranspileRequest{Target: domain.TargetPreact, Content: in})
	require.NoError(t, err)
	assert.Equal(t, "import Icon from \"./icon\";\n", untyped)

	typed, err := tr.Transpile(t.Context(), ports.TranspileRequest{
		Target:  domain.TargetPreact,
		Content: in,
		Options: domain.TargetOptions{TypeScript: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "import type { Props } from \"./types\";\nimport Icon from \"./icon\";\n", typed)
}

func TestSolidRewriter_PostProcess(t *testing.T) {
	s := builtin.NewSolidRewriter()

	out, err := s.PostProcess(t.Context(), "button.lite.tsx",
		`import Icon from "./icon.lite";
<label htmlFor="x" className="btn" data-className="keep" />`, nil)
	require.NoError(t, err)
	assert.Equal(t, `import Icon from "./icon";
<label for="x" class="btn" data-className="keep" />`, out)
}

func TestContextGenerator_GenerateContext(t *testing.T) {
	g := builtin.NewContextGenerator()
	source := []byte("import defaults from \"./defaults.context.lite\";\n\nexport default { mode: defaults.mode };\n")

	react, err := g.GenerateContext(t.Context(), ports.ContextRequest{Target: domain.TargetReact, Source: source})
	require.NoError(t, err)
	assert.Equal(t, "import { createContext } from \"react\";\n"+
		"import defaults from \"./defaults\";\n\n"+
		"export default createContext({ mode: defaults.mode });\n", react)

	solid, err := g.GenerateContext(t.Context(), ports.ContextRequest{Target: domain.TargetSolid, Source: source})
	require.NoError(t, err)
	assert.Contains(t, solid, `from "solid-js"`)

	vue, err := g.GenerateContext(t.Context(), ports.ContextRequest{Target: domain.TargetVue3, Source: source})
	require.NoError(t, err)
	assert.Equal(t, "import defaults from \"./defaults\";\n\nexport default { mode: defaults.mode };\n", vue)
}

func TestContextGenerator_NoDefaultExport(t *testing.T) {
	g := builtin.NewContextGenerator()

	_, err := g.GenerateContext(t.Context(), ports.ContextRequest{
		Target: domain.TargetReact,
		Source: []byte("export const theme = {};\n"),
	})
	require.Error(t, err)

	_, err = g.GenerateContext(t.Context(), ports.ContextRequest{
		Target: domain.TargetReact,
		Source: []byte("export default ;\n"),
	})
	require.Error(t, err)
}

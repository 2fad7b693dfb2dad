package plugin_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/adapters/plugin"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/fanout/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestParser_Parse(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().Run(gomock.Any(), ports.Command{
		Args:  []string{"mitosis-parse", "--json"},
		Dir:   "/work",
		Env:   []string{"FANOUT_PATH=button.lite.tsx"},
		Stdin: []byte("source"),
	}).Return([]byte(`{"name":"Button","props":["label"]}`), nil)

	p := plugin.NewParser(runner, []string{"mitosis-parse", "--json"}, "/work")
	doc, err := p.Parse(t.Context(), "button.lite.tsx", []byte("source"))
	require.NoError(t, err)

	want := domain.Document{"name": "Button", "props": []any{"label"}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Parse_InvalidOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	p := plugin.NewParser(runner, []string{"parse"}, "/work")

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return([]byte("not json"), nil)
	_, err := p.Parse(t.Context(), "button.lite.tsx", []byte("source"))
	require.ErrorIs(t, err, domain.ErrPluginOutputInvalid)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return([]byte("null"), nil)
	_, err = p.Parse(t.Context(), "button.lite.tsx", []byte("source"))
	require.ErrorIs(t, err, domain.ErrPluginOutputInvalid)
}

func TestParser_Parse_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPluginFailed)

	p := plugin.NewParser(runner, []string{"parse"}, "/work")
	_, err := p.Parse(t.Context(), "button.lite.tsx", []byte("source"))
	require.ErrorIs(t, err, domain.ErrPluginFailed)
}

func TestGenerator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	opts := domain.TargetOptions{
		TypeScript: true,
		Generator:  []string{"gen-vue"},
		Knobs:      map[string]any{"api": "composition"},
	}

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.Command) ([]byte, error) {
			assert.Equal(t, []string{"gen-vue"}, cmd.Args)
			assert.Equal(t, "/work", cmd.Dir)
			assert.Equal(t, []string{
				"FANOUT_PATH=button.lite.tsx",
				"FANOUT_TARGET=vue3",
				"FANOUT_TYPESCRIPT=true",
			}, cmd.Env)

			var req map[string]any
			require.NoError(t, json.Unmarshal(cmd.Stdin, &req))
			assert.Equal(t, map[string]any{
				"target":    "vue3",
				"path":      "button.lite.tsx",
				"component": map[string]any{"name": "Button"},
				"options":   map[string]any{"api": "composition", "typescript": true},
			}, req)
			return []byte("<template />\n"), nil
		})

	g, err := plugin.NewGenerator(runner, "/work", domain.TargetVue3, opts)
	require.NoError(t, err)

	out, err := g.Generate(t.Context(), "button.lite.tsx", domain.Document{"name": "Button"})
	require.NoError(t, err)
	assert.Equal(t, "<template />\n", out)
}

func TestNewGenerator_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := plugin.NewGenerator(mocks.NewMockCommandRunner(ctrl), "/work", domain.TargetReact, domain.TargetOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidTargetOptions)
}

func TestTranspiler_Transpile(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().Run(gomock.Any(), ports.Command{
		Args: []string{"esbuild-wrap"},
		Dir:  "/work",
		Env: []string{
			"FANOUT_PATH=util.ts",
			"FANOUT_TARGET=react",
			"FANOUT_TYPESCRIPT=false",
		},
		Stdin: []byte("const a: number = 1;"),
	}).Return([]byte("const a = 1;"), nil)

	tr := plugin.NewTranspiler(runner, []string{"esbuild-wrap"}, "/work")
	out, err := tr.Transpile(t.Context(), ports.TranspileRequest{
		Target:  domain.TargetReact,
		Path:    "util.ts",
		Content: "const a: number = 1;",
	})
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;", out)
}

func TestPostProcessor_PostProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.Command) ([]byte, error) {
			assert.Equal(t, []string{"FANOUT_PATH=button.lite.tsx", "FANOUT_TARGET=solid"}, cmd.Env)
			assert.JSONEq(t, `{"path":"button.lite.tsx","contents":"<div/>","component":{"name":"Button"}}`, string(cmd.Stdin))
			return []byte("<div />"), nil
		})

	p := plugin.NewPostProcessor(runner, []string{"solid-rewrite"}, "/work")
	out, err := p.PostProcess(t.Context(), "button.lite.tsx", "<div/>", domain.Document{"name": "Button"})
	require.NoError(t, err)
	assert.Equal(t, "<div />", out)
}

func TestContextGenerator_GenerateContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().Run(gomock.Any(), ports.Command{
		Args: []string{"ctx"},
		Dir:  "/work",
		Env: []string{
			"FANOUT_PATH=theme.context.lite.ts",
			"FANOUT_TARGET=solid",
			"FANOUT_TYPESCRIPT=true",
		},
		Stdin: []byte("export default {};"),
	}).Return(nil, zerr.Wrap(domain.ErrPluginFailed, "exit status 1"))

	g := plugin.NewContextGenerator(runner, []string{"ctx"}, "/work")
	_, err := g.GenerateContext(t.Context(), ports.ContextRequest{
		Target:  domain.TargetSolid,
		Path:    "theme.context.lite.ts",
		Source:  []byte("export default {};"),
		Options: domain.TargetOptions{TypeScript: true},
	})
	require.ErrorIs(t, err, domain.ErrPluginFailed)
}

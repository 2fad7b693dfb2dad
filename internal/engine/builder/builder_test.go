package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/adapters/builtin"
	"go.trai.ch/fanout/internal/adapters/cas"
	"go.trai.ch/fanout/internal/adapters/fs"
	"go.trai.ch/fanout/internal/adapters/plugin"
	"go.trai.ch/fanout/internal/adapters/telemetry"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/fanout/internal/core/ports/mocks"
	"go.trai.ch/fanout/internal/engine/builder"
	"go.trai.ch/fanout/internal/testutil"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const (
	buttonSource = "import Icon from \"./icon.lite\";\n" +
		"export default function Button() { return <button className=\"b\" />; }\n"
	themeSource = "export default { mode: \"dark\" };\n"
	utilsSource = "import type { Mode } from \"./types\";\nimport theme from \"./theme.context.lite\";\nexport const mode = theme.mode;\n"
)

type harness struct {
	root  string
	opts  *domain.BuildOptions
	log   *mocks.MockLogger
	store *cas.Store
}

func newHarness(t *testing.T, targets ...string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	opts := domain.DefaultBuildOptions(root)
	opts.Targets = targets
	opts.Concurrency = 4

	return &harness{
		root:  root,
		opts:  opts,
		log:   mocks.NewMockLogger(ctrl),
		store: cas.NewStore(),
	}
}

func (h *harness) quiet() {
	h.log.EXPECT().Info(gomock.Any()).AnyTimes()
	h.log.EXPECT().Warn(gomock.Any()).AnyTimes()
}

func (h *harness) builder(toolchain ports.Toolchain) *builder.Builder {
	walker := fs.NewWalker()
	return builder.New(
		toolchain,
		fs.NewDiscovery(walker),
		fs.NewReader(),
		fs.NewOverrideResolver(),
		fs.NewWriter(fs.NewHasher()),
		fs.NewCleaner(walker),
		h.store,
		telemetry.NewNoOp(),
		h.log,
	)
}

func (h *harness) builtinBuilder(t *testing.T) *builder.Builder {
	t.Helper()
	return h.builder(plugin.NewToolchain(mocks.NewMockCommandRunner(gomock.NewController(t))))
}

func (h *harness) writeSources(t *testing.T) {
	t.Helper()
	testutil.WriteFile(t, h.root, "src/button.lite.tsx", buttonSource)
	testutil.WriteFile(t, h.root, "src/theme.context.lite.ts", themeSource)
	testutil.WriteFile(t, h.root, "src/utils.ts", utilsSource)
}

func (h *harness) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(h.root, filepath.FromSlash(rel)))
	return err == nil
}

// mockToolchain serves the builtin collaborators with the given generator
// factory.
func mockToolchain(t *testing.T, gen func(target domain.Target) ports.Generator) *mocks.MockToolchain {
	t.Helper()
	tc := mocks.NewMockToolchain(gomock.NewController(t))
	tc.EXPECT().Parser(gomock.Any()).Return(builtin.NewParser()).AnyTimes()
	tc.EXPECT().Transpiler(gomock.Any()).Return(builtin.NewTranspiler()).AnyTimes()
	tc.EXPECT().PostProcessor(gomock.Any()).Return(builtin.NewSolidRewriter()).AnyTimes()
	tc.EXPECT().ContextGenerator(gomock.Any()).Return(builtin.NewContextGenerator()).AnyTimes()
	tc.EXPECT().ImportRewriter(gomock.Any()).DoAndReturn(builtin.ImportRewriter).AnyTimes()
	tc.EXPECT().Generator(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *domain.BuildOptions, target domain.Target, _ domain.TargetOptions) (ports.Generator, error) {
			return gen(target), nil
		}).AnyTimes()
	return tc
}

func TestBuild_ReactAndVue(t *testing.T) {
	h := newHarness(t, "react", "vue3")
	h.quiet()
	h.writeSources(t)

	require.NoError(t, h.builtinBuilder(t).Build(t.Context(), h.opts))

	assert.Equal(t,
		"import Icon from \"./icon\";\nexport default function Button() { return <button className=\"b\" />; }\n",
		testutil.ReadFile(t, h.root, "output/react/button.jsx"))
	assert.Equal(t,
		"import Icon from \"./icon.vue\";\nexport default function Button() { return <button className=\"b\" />; }\n",
		testutil.ReadFile(t, h.root, "output/vue/vue3/button.vue"))

	assert.Equal(t,
		"import { createContext } from \"react\";\nexport default createContext({ mode: \"dark\" });\n",
		testutil.ReadFile(t, h.root, "output/react/theme.js"))
	assert.Equal(t, themeSource, testutil.ReadFile(t, h.root, "output/vue/vue3/theme.js"))

	wantUtils := "import theme from \"./theme\";\nexport const mode = theme.mode;\n"
	assert.Equal(t, wantUtils, testutil.ReadFile(t, h.root, "output/react/utils.js"))
	assert.Equal(t, wantUtils, testutil.ReadFile(t, h.root, "output/vue/vue3/utils.js"))

	assert.False(t, h.exists("output/react/button.tsx"))
	assert.False(t, h.exists("output/react/theme.context.lite.js"))

	manifest, err := h.store.Load(h.root)
	require.NoError(t, err)
	require.NotNil(t, manifest)
	assert.Equal(t, filepath.Join(h.root, "output"), manifest.Dest)

	paths := make([]string, 0, len(manifest.Artifacts))
	for _, a := range manifest.Artifacts {
		paths = append(paths, a.Path)
		assert.NotEmpty(t, a.Hash)
	}
	assert.Equal(t, []string{
		"react/button.jsx",
		"react/theme.js",
		"react/utils.js",
		"vue/vue3/button.vue",
		"vue/vue3/theme.js",
		"vue/vue3/utils.js",
	}, paths)
}

func TestBuild_TypedOutput(t *testing.T) {
	h := newHarness(t, "react")
	h.quiet()
	h.writeSources(t)
	h.opts.Options["react"] = domain.TargetOptions{TypeScript: true}

	require.NoError(t, h.builtinBuilder(t).Build(t.Context(), h.opts))

	assert.Equal(t,
		"import Icon from \"./icon\";\nexport default function Button() { return <button className=\"b\" />; }\n",
		testutil.ReadFile(t, h.root, "output/react/button.tsx"))
	assert.True(t, h.exists("output/react/button.jsx"))
	assert.True(t, h.exists("output/react/theme.ts"))
	assert.Equal(t,
		"import type { Mode } from \"./types\";\nimport theme from \"./theme\";\nexport const mode = theme.mode;\n",
		testutil.ReadFile(t, h.root, "output/react/utils.ts"))
	assert.False(t, h.exists("output/react/utils.js"))
}

func TestBuild_TypedOutputIsPerTarget(t *testing.T) {
	h := newHarness(t, "react", "vue3")
	h.quiet()
	h.writeSources(t)
	h.opts.Options["vue3"] = domain.TargetOptions{TypeScript: true}

	require.NoError(t, h.builtinBuilder(t).Build(t.Context(), h.opts))

	assert.True(t, h.exists("output/vue/vue3/button.vue"))
	assert.Equal(t,
		"import Icon from \"./icon.vue\";\nexport default function Button() { return <button className=\"b\" />; }\n",
		testutil.ReadFile(t, h.root, "output/vue/vue3/button.tsx"))
	assert.True(t, h.exists("output/vue/vue3/utils.ts"))

	assert.True(t, h.exists("output/react/button.jsx"))
	assert.False(t, h.exists("output/react/button.tsx"))
	assert.True(t, h.exists("output/react/utils.js"))
	assert.False(t, h.exists("output/react/utils.ts"))
}

func TestBuild_ComponentOverrideSkipsGenerator(t *testing.T) {
	h := newHarness(t, "react")
	h.quiet()
	h.writeSources(t)
	testutil.WriteFile(t, h.root, "overrides/react/button.jsx", "export default function Custom() {}\n")

	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	b := h.builder(mockToolchain(t, func(domain.Target) ports.Generator { return gen }))
	require.NoError(t, b.Build(t.Context(), h.opts))

	assert.Equal(t, "export default function Custom() {}\n", testutil.ReadFile(t, h.root, "output/react/button.jsx"))
}

func TestBuild_AncillaryOverride(t *testing.T) {
	h := newHarness(t, "react", "svelte")
	h.quiet()
	h.writeSources(t)
	h.opts.Options["svelte"] = domain.TargetOptions{TypeScript: true}
	testutil.WriteFile(t, h.root, "overrides/react/theme.context.lite.ts", "import a from \"./a.lite\";\nexport default 1;\n")
	testutil.WriteFile(t, h.root, "overrides/svelte/utils.ts", "import type { X } from \"./x\";\nimport a from \"./a.lite\";\n")

	require.NoError(t, h.builtinBuilder(t).Build(t.Context(), h.opts))

	// Untyped overrides are transpiled, not regenerated.
	assert.Equal(t, "import a from \"./a\";\nexport default 1;\n", testutil.ReadFile(t, h.root, "output/react/theme.js"))
	// Typed overrides only get their imports rewritten.
	assert.Equal(t, "import type { X } from \"./x\";\nimport a from \"./a.svelte\";\n",
		testutil.ReadFile(t, h.root, "output/svelte/utils.ts"))
}

func TestBuild_TargetsAreIsolated(t *testing.T) {
	h := newHarness(t, "react", "solid", "qwik")
	h.quiet()
	testutil.WriteFile(t, h.root, "src/button.lite.tsx", buttonSource)

	var seen sync.Map
	gen := func(target domain.Target) ports.Generator {
		g := mocks.NewMockGenerator(gomock.NewController(t))
		g.EXPECT().Generate(gomock.Any(), "button.lite.tsx", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, doc domain.Document) (string, error) {
				seen.Store(target, doc[builtin.KeyName])
				doc[builtin.KeyName] = "mutated by " + target.String()
				return "export default 1;\n", nil
			})
		return g
	}

	require.NoError(t, h.builder(mockToolchain(t, gen)).Build(t.Context(), h.opts))

	for _, target := range []domain.Target{domain.TargetReact, domain.TargetSolid, domain.TargetQwik} {
		name, ok := seen.Load(target)
		require.True(t, ok, target.String())
		assert.Equal(t, "button", name, target.String())
	}
}

func TestBuild_AliasWarns(t *testing.T) {
	h := newHarness(t, "vue")
	h.log.EXPECT().Info(gomock.Any()).AnyTimes()
	h.log.EXPECT().Warn("no vue version specified, defaulting to vue3").Times(1)
	testutil.WriteFile(t, h.root, "src/button.lite.tsx", buttonSource)

	require.NoError(t, h.builtinBuilder(t).Build(t.Context(), h.opts))
	assert.True(t, h.exists("output/vue/vue3/button.vue"))
}

func TestBuild_UnsupportedTargetWritesNothing(t *testing.T) {
	h := newHarness(t, "react", "flutter")
	h.quiet()
	h.writeSources(t)
	testutil.WriteFile(t, h.root, "output/react/keep.jsx", "keep")

	err := h.builtinBuilder(t).Build(t.Context(), h.opts)
	require.ErrorIs(t, err, domain.ErrUnsupportedTarget)

	target, ok := testutil.ErrorField(err, "target")
	require.True(t, ok)
	assert.Equal(t, "flutter", target)

	assert.True(t, h.exists("output/react/keep.jsx"))
	assert.False(t, h.exists("output/react/button.jsx"))
}

func TestBuild_InvalidTargetOptions(t *testing.T) {
	h := newHarness(t, "react")
	h.quiet()
	h.writeSources(t)
	h.opts.Options["react"] = domain.TargetOptions{Knobs: map[string]any{"banner": 1}}

	err := h.builtinBuilder(t).Build(t.Context(), h.opts)
	require.ErrorIs(t, err, domain.ErrInvalidTargetOptions)
	assert.False(t, h.exists("output"))
}

func TestBuild_FailFast(t *testing.T) {
	h := newHarness(t, "react", "preact")
	h.quiet()
	h.opts.Concurrency = 1
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		testutil.WriteFile(t, h.root, "src/"+name+".lite.tsx", buttonSource)
	}

	var calls atomic.Int32
	gen := func(domain.Target) ports.Generator {
		g := mocks.NewMockGenerator(gomock.NewController(t))
		g.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string, domain.Document) (string, error) {
				calls.Add(1)
				return "", zerr.New("generator exploded")
			}).AnyTimes()
		return g
	}

	err := h.builder(mockToolchain(t, gen)).Build(t.Context(), h.opts)
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	require.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.Equal(t, int32(1), calls.Load())

	path, ok := testutil.ErrorField(err, "path")
	require.True(t, ok)
	assert.Contains(t, []string{"a.lite.tsx", "b.lite.tsx", "c.lite.tsx", "d.lite.tsx", "e.lite.tsx", "f.lite.tsx"}, path)
}

func TestBuild_ContextWithoutDefaultExport(t *testing.T) {
	h := newHarness(t, "react")
	h.quiet()
	testutil.WriteFile(t, h.root, "src/theme.context.lite.ts", "export const theme = {};\n")

	err := h.builtinBuilder(t).Build(t.Context(), h.opts)
	require.ErrorIs(t, err, domain.ErrContextGenerationFailed)

	path, ok := testutil.ErrorField(err, "path")
	require.True(t, ok)
	assert.Equal(t, "theme.context.lite.ts", path)
}

func TestBuild_CleansStaleOutputs(t *testing.T) {
	h := newHarness(t, "react")
	h.quiet()
	h.opts.Files = "src/*.lite.tsx"
	testutil.WriteFile(t, h.root, "src/button.lite.tsx", buttonSource)
	testutil.WriteFile(t, h.root, "src/gone.lite.tsx", buttonSource)

	b := h.builtinBuilder(t)
	require.NoError(t, b.Build(t.Context(), h.opts))
	require.True(t, h.exists("output/react/gone.jsx"))

	require.NoError(t, os.Remove(filepath.Join(h.root, "src", "gone.lite.tsx")))
	testutil.WriteFile(t, h.root, "output/react/handwritten.js", "keep")

	require.NoError(t, b.Build(t.Context(), h.opts))
	assert.False(t, h.exists("output/react/gone.jsx"))
	assert.True(t, h.exists("output/react/button.jsx"))
	assert.True(t, h.exists("output/react/handwritten.js"))
}

func TestBuild_CleansGlobMatches(t *testing.T) {
	h := newHarness(t, "react")
	h.quiet()
	testutil.WriteFile(t, h.root, "src/button.lite.tsx", buttonSource)
	testutil.WriteFile(t, h.root, "output/react/leftover.jsx", "stale")

	require.NoError(t, h.builtinBuilder(t).Build(t.Context(), h.opts))
	assert.False(t, h.exists("output/react/leftover.jsx"))
}

func TestBuild_NoTargets(t *testing.T) {
	h := newHarness(t)
	h.log.EXPECT().Info("no targets configured, nothing to build")
	h.writeSources(t)

	require.NoError(t, h.builtinBuilder(t).Build(t.Context(), h.opts))
	assert.False(t, h.exists("output"))
}

func TestBuild_Cancelled(t *testing.T) {
	h := newHarness(t, "react")
	h.quiet()
	h.writeSources(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := h.builtinBuilder(t).Build(ctx, h.opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

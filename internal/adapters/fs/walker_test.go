package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/adapters/fs"
	"go.trai.ch/fanout/internal/testutil"
)

func collect(t *testing.T, w *fs.Walker, root string, skip ...string) []string {
	t.Helper()

	var got []string
	for p, err := range w.WalkFiles(root, skip...) {
		require.NoError(t, err)
		got = append(got, p)
	}
	return got
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, ".git/config", "git")
	testutil.WriteFile(t, root, "node_modules/pkg/index.js", "module")
	testutil.WriteFile(t, root, ".fanout/manifest.json", "{}")
	testutil.WriteFile(t, root, "output/react/button.jsx", "out")
	testutil.WriteFile(t, root, "b.ts", "b")
	testutil.WriteFile(t, root, "a/c.ts", "c")

	w := fs.NewWalker()

	assert.Equal(t, []string{"a/c.ts", "b.ts", "output/react/button.jsx"}, collect(t, w, root))
	assert.Equal(t, []string{"a/c.ts", "b.ts"}, collect(t, w, root, "output"))
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	w := fs.NewWalker()
	assert.Empty(t, collect(t, w, filepath.Join(t.TempDir(), "missing")))
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "a.ts", "a")
	testutil.WriteFile(t, root, "b.ts", "b")

	w := fs.NewWalker()
	var got []string
	for p := range w.WalkFiles(root) {
		got = append(got, p)
		break
	}
	assert.Equal(t, []string{"a.ts"}, got)
}

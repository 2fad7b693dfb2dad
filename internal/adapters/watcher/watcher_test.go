package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/adapters/watcher"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/fanout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func waitForEvent(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Path == path {
				return ev
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
			return ports.WatchEvent{}
		}
	}
}

func collect(w *watcher.Watcher) <-chan ports.WatchEvent {
	ch := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(ch)
		for ev := range w.Events() {
			ch <- ev
		}
	}()
	return ch
}

func TestWatcher_Events(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	src := t.TempDir()
	overrides := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), domain.DirPerm))

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(t.Context(), src, overrides, filepath.Join(src, "missing")))
	events := collect(w)

	created := filepath.Join(src, "nested", "button.lite.tsx")
	require.NoError(t, os.WriteFile(created, []byte("a"), domain.FilePerm))
	ev := waitForEvent(t, events, created)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)

	override := filepath.Join(overrides, "button.jsx")
	require.NoError(t, os.WriteFile(override, []byte("b"), domain.FilePerm))
	waitForEvent(t, events, override)

	require.NoError(t, os.Remove(created))
	for {
		ev = waitForEvent(t, events, created)
		if ev.Operation == ports.OpRemove {
			break
		}
	}
}

func TestWatcher_NewDirectories(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	src := t.TempDir()
	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(t.Context(), src))
	events := collect(w)

	dir := filepath.Join(src, "forms")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	waitForEvent(t, events, dir)

	// The directory is registered right after its create event is delivered.
	time.Sleep(100 * time.Millisecond)
	file := filepath.Join(dir, "input.lite.tsx")
	require.NoError(t, os.WriteFile(file, []byte("x"), domain.FilePerm))
	waitForEvent(t, events, file)
}

func TestWatcher_SkipsStateDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	root := t.TempDir()
	state := filepath.Join(root, domain.StateDirName)
	require.NoError(t, os.Mkdir(state, domain.DirPerm))

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(t.Context(), root))
	events := collect(w)

	require.NoError(t, os.WriteFile(filepath.Join(state, "manifest.json"), []byte("{}"), domain.FilePerm))
	marker := filepath.Join(root, "marker.ts")
	require.NoError(t, os.WriteFile(marker, []byte("x"), domain.FilePerm))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			require.NotEqual(t, filepath.Join(state, "manifest.json"), ev.Path)
			if ev.Path == marker {
				return
			}
		case <-timeout:
			t.Fatal("no event for marker")
		}
	}
}

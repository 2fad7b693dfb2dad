package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/adapters/watcher"
)

func TestDebouncer_Add_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, paths)
		})

		d.Add("/project/src/card.lite.tsx")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/src/button.lite.tsx")
		d.Add("/project/src/card.lite.tsx")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/project/src/button.lite.tsx", "/project/src/card.lite.tsx"}, batches[0])
	})
}

func TestDebouncer_Add_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			defer mu.Unlock()
			calls++
		})

		d.Add("/a")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		d.Add("/b")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var received []string
		d := watcher.NewDebouncer(time.Second, func(paths []string) {
			received = paths
		})

		d.Add("/project/src/theme.context.lite.ts")
		d.Flush()
		assert.Equal(t, []string{"/project/src/theme.context.lite.ts"}, received)

		received = nil
		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Nil(t, received)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/a")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}

package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskmap/internal/adapters/watcher"
)

// recorder captures every batch a debouncer delivers.
type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func (r *recorder) last() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.batches) == 0 {
		return nil
	}
	return r.batches[len(r.batches)-1]
}

func TestDebouncer_DeliversAfterQuietWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("Taskfile.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, rec.count())
		assert.Equal(t, []string{"Taskfile.yaml"}, rec.last())
	})
}

func TestDebouncer_CoalescesOneBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("Taskfile.yaml")
		d.Add("includes/ci.yaml")
		d.Add("includes/deploy.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, rec.count(), "events inside one window must form one batch")

		// Pending paths live in a map, so batch order is unspecified.
		batch := rec.last()
		require.Len(t, batch, 3)
		assert.Contains(t, batch, "Taskfile.yaml")
		assert.Contains(t, batch, "includes/ci.yaml")
		assert.Contains(t, batch, "includes/deploy.yaml")
	})
}

func TestDebouncer_DeduplicatesRepeatedEvents(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		for range 3 {
			d.Add("Taskfile.yaml")
		}

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, rec.count())
		assert.Equal(t, []string{"Taskfile.yaml"}, rec.last())
	})
}

func TestDebouncer_EventExtendsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("Taskfile.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("includes/ci.yaml")

		// 100ms after the first event the original window has elapsed, but
		// the second event pushed delivery out.
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 0, rec.count(), "delivery must wait for a full quiet window")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, rec.count())
		assert.Len(t, rec.last(), 2)
	})
}

func TestDebouncer_StartsFreshBatchAfterDelivery(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("Taskfile.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, rec.count())

		d.Add("includes/ci.yaml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 2, rec.count())
		assert.Equal(t, []string{"includes/ci.yaml"}, rec.last(), "earlier batch must not leak into the next")
	})
}

func TestDebouncer_ZeroWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(0, rec.callback)

		d.Add("Taskfile.yaml")

		time.Sleep(time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, rec.count())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("Taskfile.yaml")
		d.Add("includes/ci.yaml")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
	})
}

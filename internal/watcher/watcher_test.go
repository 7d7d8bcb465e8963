package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bft-labs/budgetplanner/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	_, err := New(Config{}, nil)
	require.Error(t, err)

	w, err := New(Config{Path: "config.toml"}, nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.NotNil(t, w.logger)
}

// harness runs a Watcher in the background and records reloads.
type harness struct {
	t        *testing.T
	path     string
	debounce time.Duration
	reloads  chan struct{}
	calls    atomic.Int32
	cancel   context.CancelFunc
	done     chan error
}

func startWatcher(t *testing.T, debounce time.Duration, fail func(n int32) error) *harness {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("year = 2024\n"), 0o644))

	w, err := New(Config{Path: path, Debounce: debounce}, log.NewNoopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		t:        t,
		path:     path,
		debounce: debounce,
		reloads:  make(chan struct{}, 64),
		cancel:   cancel,
		done:     make(chan error, 1),
	}
	go func() {
		h.done <- w.Run(ctx, func(context.Context) error {
			n := h.calls.Add(1)
			select {
			case h.reloads <- struct{}{}:
			default:
			}
			if fail != nil {
				return fail(n)
			}
			return nil
		})
	}()
	t.Cleanup(h.stop)
	return h
}

func (h *harness) write(content string) {
	require.NoError(h.t, os.WriteFile(h.path, []byte(content), 0o644))
}

// waitReady keeps touching the file until the first reload arrives, which
// proves the watch is registered. Writes are spaced wider than the debounce
// so each one can fire on its own.
func (h *harness) waitReady() {
	h.t.Helper()
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(h.debounce + 50*time.Millisecond)
	defer tick.Stop()
	for {
		h.write("year = 2024\n")
		select {
		case <-h.reloads:
			h.drain(h.debounce + 200*time.Millisecond)
			return
		case <-tick.C:
		case <-deadline:
			h.t.Fatal("watcher never reported a change")
		}
	}
}

// drain discards reloads until none arrive for quiet.
func (h *harness) drain(quiet time.Duration) {
	for {
		select {
		case <-h.reloads:
		case <-time.After(quiet):
			return
		}
	}
}

func (h *harness) expectReload(timeout time.Duration) {
	h.t.Helper()
	select {
	case <-h.reloads:
	case <-time.After(timeout):
		h.t.Fatal("expected a reload")
	}
}

func (h *harness) expectNoReload(wait time.Duration) {
	h.t.Helper()
	select {
	case <-h.reloads:
		h.t.Fatal("unexpected reload")
	case <-time.After(wait):
	}
}

func (h *harness) stop() {
	if h.cancel == nil {
		return
	}
	h.cancel()
	h.cancel = nil
	select {
	case err := <-h.done:
		assert.NoError(h.t, err)
	case <-time.After(5 * time.Second):
		h.t.Error("Run did not return after cancel")
	}
}

func TestRun_ReloadsOnWrite(t *testing.T) {
	h := startWatcher(t, 20*time.Millisecond, nil)
	h.waitReady()

	h.write("year = 2025\n")
	h.expectReload(2 * time.Second)
	h.stop()
}

func TestRun_DebouncesBurst(t *testing.T) {
	h := startWatcher(t, 300*time.Millisecond, nil)
	h.waitReady()

	for i := 0; i < 5; i++ {
		h.write("year = 2025\n")
	}
	h.expectReload(2 * time.Second)
	h.expectNoReload(600 * time.Millisecond)
	h.stop()
}

func TestRun_IgnoresOtherFiles(t *testing.T) {
	h := startWatcher(t, 20*time.Millisecond, nil)
	h.waitReady()

	other := filepath.Join(filepath.Dir(h.path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("hello"), 0o644))
	h.expectNoReload(300 * time.Millisecond)
	h.stop()
}

func TestRun_KeepsWatchingAfterFailedReload(t *testing.T) {
	h := startWatcher(t, 20*time.Millisecond, func(n int32) error {
		if n <= 2 {
			return errors.New("bad config")
		}
		return nil
	})
	h.waitReady()

	h.write("year = 2026\n")
	h.expectReload(2 * time.Second)
	assert.GreaterOrEqual(t, h.calls.Load(), int32(2))
	h.stop()
}

func TestRun_MissingDirectory(t *testing.T) {
	w, err := New(Config{Path: filepath.Join(t.TempDir(), "missing", "config.toml")}, nil)
	require.NoError(t, err)

	err = w.Run(context.Background(), func(context.Context) error { return nil })
	require.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	w, err := New(Config{Path: filepath.Join(t.TempDir(), "config.toml")}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx, func(context.Context) error { return nil }))
}

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	}
	time.Sleep(150 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Cancel()
	time.Sleep(100 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("expected cancelled callback not to run, got %d calls", n)
	}
}

func TestDebouncerDefault(t *testing.T) {
	if d := NewDebouncer(0); d.duration != DefaultDebounce {
		t.Errorf("expected default duration, got %v", d.duration)
	}
}

func TestWatchFileChange(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "series.toml")
	if err := os.WriteFile(path, []byte("values = [1.0]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(tmp, "other.toml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	os.WriteFile(other, []byte("ignored"), 0644)
	os.WriteFile(path, []byte("values = [1.0, 2.0]\n"), 0644)

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/dir/series.toml", 0, func() {})
	if err == nil {
		t.Error("expected error for a missing directory")
	}
}

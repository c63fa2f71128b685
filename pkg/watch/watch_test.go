package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resets.txt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	fired := make(chan string, 8)

	w := New(path, 200*time.Millisecond, func(p string) {
		calls.Add(1)
		fired <- p
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	// A burst of writes inside the debounce window must collapse into one
	// callback.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("revision"), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case got := <-fired:
		if got != filepath.Clean(path) {
			t.Errorf("callback path = %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no callback after write burst")
	}

	// The debounce window must have passed with no further writes, so no
	// second callback may arrive.
	time.Sleep(600 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("callbacks = %d, want 1", n)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resets.txt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan string, 1)
	w := New(path, 100*time.Millisecond, func(p string) { fired <- p })
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-fired:
		t.Errorf("unexpected callback for sibling write: %q", p)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_StopPreventsCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resets.txt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan string, 1)
	w := New(path, 300*time.Millisecond, func(p string) { fired <- p })
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := os.WriteFile(path, []byte("revision"), 0644); err != nil {
		t.Fatal(err)
	}
	// Stop before the debounce timer fires.
	time.Sleep(50 * time.Millisecond)
	w.Stop()

	select {
	case p := <-fired:
		t.Errorf("callback after Stop: %q", p)
	case <-time.After(600 * time.Millisecond):
	}
}

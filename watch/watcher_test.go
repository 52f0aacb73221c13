package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "flow.mmd")
	other := filepath.Join(dir, "other.mmd")
	for _, path := range []string{watched, other} {
		if err := os.WriteFile(path, []byte("graph TD\n"), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	changed := make(chan string, 16)
	w, err := New([]string{watched}, func(path string) {
		changed <- path
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(other, []byte("graph LR\n"), 0644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(watched, []byte("graph TD\n  A --> B\n"), 0644); err != nil {
			t.Fatalf("write watched: %v", err)
		}
	}

	select {
	case path := <-changed:
		if path != watched {
			t.Errorf("handler path = %q, want %q", path, watched)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	for {
		select {
		case path := <-changed:
			if path != watched {
				t.Errorf("unexpected change for %q", path)
			}
		default:
			return
		}
	}
}

func TestNewMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "flow.mmd")
	if _, err := New([]string{missing}, func(string) {}); err == nil {
		t.Error("New succeeded for a file in a missing directory")
	}
}

package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgreenblatt/cmake-cli/internal/adapters/watcher"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, dir))

	received := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			received <- event
			return
		}
	}()

	path := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int main() {}\n"), 0o600))

	select {
	case event := <-received:
		assert.Equal(t, path, event.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received for file write")
	}
}

func TestWatcher_SkipsBuildDirectory(t *testing.T) {
	dir := t.TempDir()
	buildDir := filepath.Join(dir, "build")
	require.NoError(t, os.MkdirAll(buildDir, 0o750))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, dir))

	received := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			received <- event
			return
		}
	}()

	// Writes below build/ must not produce events; a later source write must.
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "out.o"), []byte("o"), 0o600))
	time.Sleep(100 * time.Millisecond)

	srcPath := filepath.Join(dir, "lib.cpp")
	require.NoError(t, os.WriteFile(srcPath, []byte("void f();\n"), 0o600))

	select {
	case event := <-received:
		assert.Equal(t, srcPath, event.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received for source write")
	}
}

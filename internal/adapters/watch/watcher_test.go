package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWatchEvent(t *testing.T) {
	assert.True(t, isWatchEvent(fsnotify.Write))
	assert.True(t, isWatchEvent(fsnotify.Create|fsnotify.Chmod))
	assert.False(t, isWatchEvent(fsnotify.Chmod))
}

func TestShouldSkipDir(t *testing.T) {
	assert.True(t, ShouldSkipDir(".git"))
	assert.True(t, ShouldSkipDir("node_modules"))
	assert.False(t, ShouldSkipDir("static"))
}

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	static := filepath.Join(dir, "static")
	require.NoError(t, os.WriteFile(content, []byte("x"), 0644))
	require.NoError(t, os.Mkdir(static, 0755))

	w := New([]string{content, static}, 0, func([]string) {}, nil)

	assert.True(t, w.relevant(content))
	assert.True(t, w.relevant(filepath.Join(static, "img", "a.png")))
	assert.False(t, w.relevant(filepath.Join(dir, "notes.txt")))
	assert.False(t, w.relevant(filepath.Join(dir, "static-old", "a.png")))
}

func TestWatcherDebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(content, []byte("a"), 0644))

	calls := make(chan []string, 4)
	w := New([]string{content}, 100*time.Millisecond, func(paths []string) { calls <- paths }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(content, []byte{byte('b' + i)}, 0644))
	}

	select {
	case paths := <-calls:
		assert.Contains(t, paths, content)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a rebuild callback")
	}

	select {
	case <-calls:
		t.Fatal("burst should produce a single callback")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

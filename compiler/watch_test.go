package compiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "schema.sql")
	out := filepath.Join(dir, "schema.mmd")
	writeFile(t, in, "CREATE TABLE first (\n  id INT\n);\n")

	c, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx, Job{File: in, Output: out}) }()

	contains := func(s string) func() bool {
		return func() bool {
			b, err := os.ReadFile(out)
			return err == nil && strings.Contains(string(b), s)
		}
	}
	require.Eventually(t, contains("\tfirst {\n"), 5*time.Second, 20*time.Millisecond)

	writeFile(t, in, "CREATE TABLE second (\n  id INT\n);\n")
	require.Eventually(t, contains("\tsecond {\n"), 5*time.Second, 20*time.Millisecond)

	// A broken edit keeps the last good diagram and the watcher alive.
	writeFile(t, in, "ALTER TABLE a ADD CONSTRAINT fk;\n")
	writeFile(t, in, "CREATE TABLE third (\n);\n")
	require.Eventually(t, contains("\tthird {\n"), 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)
	err = c.Watch(context.Background(), Job{File: filepath.Join(t.TempDir(), "missing", "schema.sql")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch")
}

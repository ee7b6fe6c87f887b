package compiler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch compiles j and compiles it again every time j.File is written or
// replaced. Compile errors are logged and watching goes on. Watch returns nil
// once ctx is done.
func (c *Compiler) Watch(ctx context.Context, j Job) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace the file instead of writing it in place, so the
	// directory is watched rather than the file.
	target := filepath.Clean(j.File)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", j.File, err)
	}
	c.rebuild(ctx, j)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c.cfg.Logger.Debug("input changed", "file", j.File, "op", ev.Op.String())
			c.rebuild(ctx, j)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", j.File, err)
		}
	}
}

func (c *Compiler) rebuild(ctx context.Context, j Job) {
	if err := c.CompileFile(ctx, j); err != nil {
		c.cfg.Logger.Error("compile failed", "file", j.File, "error", err)
	}
}

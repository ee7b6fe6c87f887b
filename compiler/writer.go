package compiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/erd"
)

// Job is one input file and where its diagram goes.
type Job struct {
	// File is the SQL script to read.
	File string `yaml:"file"`
	// Output is the diagram path. Empty means the configured stdout.
	Output string `yaml:"output,omitempty"`
}

// CompileFile reads j.File, compiles it and writes the diagram.
// Nothing is written when compilation fails.
func (c *Compiler) CompileFile(ctx context.Context, j Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := os.ReadFile(j.File)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	out, err := c.Compile(string(src))
	if err != nil {
		return erd.NewCompileError(j.File, err)
	}
	if j.Output == "" {
		c.stdoutMu.Lock()
		defer c.stdoutMu.Unlock()
		_, err := fmt.Fprintln(c.cfg.Stdout, out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(j.Output), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", j.Output, err)
	}
	if err := os.WriteFile(j.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.cfg.Logger.Debug("wrote diagram", "file", j.File, "output", j.Output, "bytes", len(out))
	return nil
}

// CompileAll compiles jobs in parallel, at most Workers at a time.
// The first failure cancels the jobs that have not started yet.
func (c *Compiler) CompileAll(ctx context.Context, jobs []Job) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.cfg.Workers)

	for _, j := range jobs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return c.CompileFile(ctx, j)
			}
		})
	}
	return eg.Wait()
}

package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syssam/erd"
)

// Project lists diagrams to generate together.
//
//	workers: 4
//	diagrams:
//	  - file: schema/users.sql
//	    output: docs/users.mmd
type Project struct {
	// Workers overrides the default parallelism when positive.
	Workers  int   `yaml:"workers,omitempty"`
	Diagrams []Job `yaml:"diagrams"`
}

// LoadProject reads a YAML project file. Relative paths inside it are
// resolved against the directory of the project file.
func LoadProject(path string) (*Project, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	var p Project
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode project %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for i := range p.Diagrams {
		p.Diagrams[i].File = resolve(dir, p.Diagrams[i].File)
		p.Diagrams[i].Output = resolve(dir, p.Diagrams[i].Output)
	}
	return &p, nil
}

// Options returns the compiler options the project asks for.
func (p *Project) Options() []Option {
	var opts []Option
	if p.Workers > 0 {
		opts = append(opts, WithWorkers(p.Workers))
	}
	return opts
}

func (p *Project) validate() error {
	if p.Workers < 0 {
		return erd.NewConfigError("workers", p.Workers, "must not be negative")
	}
	if len(p.Diagrams) == 0 {
		return erd.NewConfigError("diagrams", nil, "at least one diagram is required")
	}
	for i, d := range p.Diagrams {
		if d.File == "" {
			return erd.NewConfigError(fmt.Sprintf("diagrams[%d].file", i), nil, "cannot be empty")
		}
	}
	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

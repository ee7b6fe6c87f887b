// Package compiler turns SQL DDL scripts into Mermaid ER diagrams.
//
// A document goes through three passes over the whole input:
//
//	tokens, err := lex.Lex(src)        // line-level tokens
//	exprs, err := parse.Parse(tokens)  // table and foreign key statements
//	out := mermaid.Emit(exprs)         // erDiagram markup
//
// Compile runs all three and returns either the full diagram or the first
// error; there is no partial output. The Compiler type adds file handling
// on top: single files (CompileFile), parallel batches (CompileAll), YAML
// project files (LoadProject) and regeneration on change (Watch).
package compiler

import (
	"sync"

	"github.com/syssam/erd/compiler/lex"
	"github.com/syssam/erd/compiler/mermaid"
	"github.com/syssam/erd/compiler/parse"
)

// Compiler compiles DDL sources with a fixed configuration.
// It is safe for concurrent use.
type Compiler struct {
	cfg *Config

	// serializes writes to cfg.Stdout
	stdoutMu sync.Mutex
}

// New creates a Compiler.
func New(opts ...Option) (*Compiler, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Compiler{cfg: cfg}, nil
}

var defaultCompiler = &Compiler{cfg: defaultConfig()}

// Compile compiles src with the default configuration.
func Compile(src string) (string, error) {
	return defaultCompiler.Compile(src)
}

// Compile converts a DDL script into erDiagram markup.
func (c *Compiler) Compile(src string) (string, error) {
	tokens, err := lex.Lex(src)
	if err != nil {
		return "", err
	}
	c.cfg.Logger.Debug("lexed source", "tokens", len(tokens))
	exprs, err := parse.Parse(tokens)
	if err != nil {
		return "", err
	}
	c.cfg.Logger.Debug("parsed statements", "expressions", len(exprs))
	return mermaid.Emit(exprs), nil
}

// Package erd holds the errors shared by the erd compiler stages.
//
// Every stage reports failures through a structured error type that matches
// one of the sentinels below with errors.Is:
//
//	out, err := compiler.Compile(src)
//	switch {
//	case errors.Is(err, erd.ErrSyntax):
//	    // malformed FOREIGN KEY ("field") wrapping
//	case errors.Is(err, erd.ErrInvalidField):
//	    // a CREATE TABLE body holds something other than a column
//	case errors.Is(err, erd.ErrInvalidExpression):
//	    // a statement matches no recognized shape
//	}
package erd

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors.
var (
	// ErrSyntax is returned when a line cannot be tokenized.
	ErrSyntax = errors.New("erd: syntax error")

	// ErrInvalidField is returned when a table body contains a token that is
	// not a field declaration.
	ErrInvalidField = errors.New("erd: invalid field")

	// ErrInvalidExpression is returned when a statement matches neither a
	// table definition nor a foreign key constraint.
	ErrInvalidExpression = errors.New("erd: invalid expression")

	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("erd: missing configuration")

	// ErrCompileFailed indicates that compiling an input file failed.
	ErrCompileFailed = errors.New("erd: compile failed")
)

// SyntaxError reports a line the tokenizer recognized but could not extract
// values from.
type SyntaxError struct {
	Line    int    // 1-based source line
	Word    string // offending word
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("erd: syntax error")
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Word != "" {
		fmt.Fprintf(&b, " (got %q)", e.Word)
	}
	return b.String()
}

// Is reports whether the target matches ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// NewSyntaxError creates a new SyntaxError.
func NewSyntaxError(line int, word, message string) *SyntaxError {
	return &SyntaxError{
		Line:    line,
		Word:    word,
		Message: message,
	}
}

// FieldError reports a non-field token inside a CREATE TABLE statement.
type FieldError struct {
	Line  int
	Table string
	Token string // textual form of the rejected token
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString("erd: invalid field")
	if e.Table != "" {
		b.WriteString(" in table ")
		b.WriteString(e.Table)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if e.Token != "" {
		b.WriteString(": ")
		b.WriteString(e.Token)
	}
	return b.String()
}

// Is reports whether the target matches ErrInvalidField.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// NewFieldError creates a new FieldError.
func NewFieldError(line int, table, token string) *FieldError {
	return &FieldError{
		Line:  line,
		Table: table,
		Token: token,
	}
}

// ExpressionError reports a statement that matches no recognized shape.
type ExpressionError struct {
	Line   int      // line of the first token of the statement
	Tokens []string // textual form of the statement tokens
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	var b strings.Builder
	b.WriteString("erd: invalid expression")
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if len(e.Tokens) > 0 {
		b.WriteString(": [")
		b.WriteString(strings.Join(e.Tokens, " "))
		b.WriteString("]")
	}
	return b.String()
}

// Is reports whether the target matches ErrInvalidExpression.
func (e *ExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// NewExpressionError creates a new ExpressionError.
func NewExpressionError(line int, tokens []string) *ExpressionError {
	return &ExpressionError{
		Line:   line,
		Tokens: tokens,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("erd: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("erd: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches ErrMissingConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// CompileError attaches the input file to a compile failure.
type CompileError struct {
	File  string
	Cause error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("erd: compile")
	if e.File != "" {
		b.WriteString(" ")
		b.WriteString(e.File)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(strings.TrimPrefix(e.Cause.Error(), "erd: "))
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrCompileFailed.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompileFailed
}

// NewCompileError creates a new CompileError.
func NewCompileError(file string, cause error) *CompileError {
	return &CompileError{
		File:  file,
		Cause: cause,
	}
}

// IsSyntaxError reports whether the error is a SyntaxError.
func IsSyntaxError(err error) bool {
	var e *SyntaxError
	return errors.As(err, &e)
}

// IsFieldError reports whether the error is a FieldError.
func IsFieldError(err error) bool {
	var e *FieldError
	return errors.As(err, &e)
}

// IsExpressionError reports whether the error is an ExpressionError.
func IsExpressionError(err error) bool {
	var e *ExpressionError
	return errors.As(err, &e)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

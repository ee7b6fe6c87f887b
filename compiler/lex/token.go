// Package lex splits SQL DDL source into line-level tokens.
package lex

import "fmt"

// Token is one classified lexical unit taken from a single source line.
//
// The concrete types are TableStart, FieldDeclaration, AlterTableStart,
// ForeignKeyTarget and StatementEnd.
type Token interface {
	fmt.Stringer
	// Pos returns the 1-based source line of the token.
	Pos() int
	token()
}

// TableStart begins a CREATE TABLE statement.
type TableStart struct {
	Name string
	Line int
}

// FieldDeclaration is a column declaration inside a table body.
type FieldDeclaration struct {
	Name string
	Type string
	Line int
}

// AlterTableStart begins an ALTER TABLE ... ADD CONSTRAINT statement.
type AlterTableStart struct {
	TableName      string
	ForeignKeyName string
	Line           int
}

// ForeignKeyTarget holds the FOREIGN KEY (...) REFERENCES ... clause.
type ForeignKeyTarget struct {
	FieldName       string
	ReferencedTable string
	Line            int
}

// StatementEnd marks a line terminated by a semicolon.
type StatementEnd struct {
	Line int
}

func (t TableStart) String() string { return fmt.Sprintf("TableStart(%s)", t.Name) }

func (t FieldDeclaration) String() string {
	return fmt.Sprintf("FieldDeclaration(%s %s)", t.Name, t.Type)
}

func (t AlterTableStart) String() string {
	return fmt.Sprintf("AlterTableStart(%s, %s)", t.TableName, t.ForeignKeyName)
}

func (t ForeignKeyTarget) String() string {
	return fmt.Sprintf("ForeignKeyTarget(%s -> %s)", t.FieldName, t.ReferencedTable)
}

func (StatementEnd) String() string { return "StatementEnd" }

func (t TableStart) Pos() int       { return t.Line }
func (t FieldDeclaration) Pos() int { return t.Line }
func (t AlterTableStart) Pos() int  { return t.Line }
func (t ForeignKeyTarget) Pos() int { return t.Line }
func (t StatementEnd) Pos() int     { return t.Line }

func (TableStart) token()       {}
func (FieldDeclaration) token() {}
func (AlterTableStart) token()  {}
func (ForeignKeyTarget) token() {}
func (StatementEnd) token()     {}

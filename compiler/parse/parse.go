package parse

import (
	"github.com/syssam/erd"
	"github.com/syssam/erd/compiler/lex"
)

// Parse converts tokens into expressions, one per statement.
//
// Statements are the non-empty runs of tokens between StatementEnd markers.
// A run must either start with TableStart followed only by field
// declarations, or consist of exactly an AlterTableStart and a
// ForeignKeyTarget. Any other run fails the whole parse and no expressions
// are returned.
func Parse(tokens []lex.Token) ([]Expression, error) {
	var exprs []Expression
	for _, run := range statements(tokens) {
		e, err := parseStatement(run)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// statements splits tokens on StatementEnd, dropping empty runs.
func statements(tokens []lex.Token) [][]lex.Token {
	var (
		runs  [][]lex.Token
		start int
	)
	for i, t := range tokens {
		if _, ok := t.(lex.StatementEnd); !ok {
			continue
		}
		if i > start {
			runs = append(runs, tokens[start:i])
		}
		start = i + 1
	}
	if start < len(tokens) {
		runs = append(runs, tokens[start:])
	}
	return runs
}

func parseStatement(run []lex.Token) (Expression, error) {
	if ts, ok := run[0].(lex.TableStart); ok {
		return parseTable(ts, run[1:])
	}
	if len(run) == 2 {
		alter, ok1 := run[0].(lex.AlterTableStart)
		target, ok2 := run[1].(lex.ForeignKeyTarget)
		if ok1 && ok2 {
			return ForeignKey{
				TableName:       alter.TableName,
				ForeignKeyName:  alter.ForeignKeyName,
				FieldName:       target.FieldName,
				ReferencedTable: target.ReferencedTable,
			}, nil
		}
	}
	names := make([]string, len(run))
	for i, t := range run {
		names[i] = t.String()
	}
	return nil, erd.NewExpressionError(run[0].Pos(), names)
}

func parseTable(ts lex.TableStart, body []lex.Token) (Expression, error) {
	fields := make([]Field, 0, len(body))
	for _, t := range body {
		fd, ok := t.(lex.FieldDeclaration)
		if !ok {
			return nil, erd.NewFieldError(t.Pos(), ts.Name, t.String())
		}
		fields = append(fields, Field{Name: fd.Name, Type: fd.Type})
	}
	return CreateTable{TableName: ts.Name, Fields: fields}, nil
}

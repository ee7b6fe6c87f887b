package lex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/erd"
)

const (
	commentOpen  = "/*"
	commentClose = "*/"
)

// Lex tokenizes src line by line.
//
// Keywords are matched case-insensitively, while identifiers keep the casing
// of the source with double quotes removed. Lines that match no rule produce
// no token. A line ending in ';' is followed by a StatementEnd.
func Lex(src string) ([]Token, error) {
	var (
		tokens    []Token
		commented bool
		lower     = cases.Lower(language.Und)
	)
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, commentOpen) {
			commented = true
		}
		if commented {
			if strings.HasSuffix(line, commentClose) {
				commented = false
			}
			continue
		}
		ln := i + 1
		orig := strings.Fields(line)
		words := make([]string, len(orig))
		for j, w := range orig {
			words[j] = lower.String(w)
		}
		tok, err := classify(ln, orig, words)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			tokens = append(tokens, tok)
		}
		if strings.HasSuffix(line, ";") {
			tokens = append(tokens, StatementEnd{Line: ln})
		}
	}
	return tokens, nil
}

// classify matches the lowercased words of a line against the recognized
// statement shapes. Values are taken from orig. A nil token means the line
// is ignored.
func classify(line int, orig, words []string) (Token, error) {
	switch {
	case len(words) >= 3 && words[0] == "create" && words[1] == "table":
		return TableStart{Name: unquote(orig[2]), Line: line}, nil
	case len(words) == 6 && words[0] == "alter" && words[1] == "table" &&
		words[3] == "add" && words[4] == "constraint":
		return AlterTableStart{
			TableName:      unquote(orig[2]),
			ForeignKeyName: unquote(orig[5]),
			Line:           line,
		}, nil
	case len(words) >= 5 && words[0] == "foreign" && words[1] == "key" && words[3] == "references":
		field, ok := strings.CutPrefix(orig[2], `("`)
		if ok {
			field, ok = strings.CutSuffix(field, `")`)
		}
		if !ok {
			return nil, erd.NewSyntaxError(line, orig[2], `foreign key field must be written as ("name")`)
		}
		return ForeignKeyTarget{
			FieldName:       field,
			ReferencedTable: unquote(orig[4]),
			Line:            line,
		}, nil
	case len(words) >= 1 && words[0] == "constraint":
		return nil, nil
	case len(words) >= 2 && words[0] == "create" && words[1] == "index":
		return nil, nil
	case len(words) >= 2:
		return FieldDeclaration{
			Name: unquote(orig[0]),
			Type: fieldType(orig[1]),
			Line: line,
		}, nil
	}
	return nil, nil
}

var typeReplacer = strings.NewReplacer("(", "", ")", "", ",", "")

// fieldType drops the length or precision arguments of a column type along
// with any leftover punctuation: VARCHAR(255) and INT, become VARCHAR and INT.
func fieldType(s string) string {
	if i := strings.IndexByte(s, '('); i > 0 {
		s = s[:i]
	}
	return typeReplacer.Replace(s)
}

func unquote(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

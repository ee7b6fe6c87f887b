// Package mermaid renders parsed schema expressions as a Mermaid erDiagram.
package mermaid

import (
	"fmt"
	"strings"

	"github.com/syssam/erd/compiler/parse"
)

// Header is the first line of every document.
const Header = "erDiagram"

// Emit renders exprs in order. Tables become entity blocks with one
// "<type> <name>" line per field, and foreign keys become one-to-many
// relationship lines labeled with the constraint name.
func Emit(exprs []parse.Expression) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, e := range exprs {
		switch e := e.(type) {
		case parse.CreateTable:
			fmt.Fprintf(&b, "\t%s {\n", e.TableName)
			for _, f := range e.Fields {
				fmt.Fprintf(&b, "\t\t%s %s\n", f.Type, f.Name)
			}
			b.WriteString("\t}\n\n")
		case parse.ForeignKey:
			// The constrained column has no place in the relationship syntax.
			fmt.Fprintf(&b, "\t%s ||--|{ %s : \"%s\"\n", e.TableName, e.ReferencedTable, e.ForeignKeyName)
		}
	}
	return b.String()
}

package mermaid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/erd/compiler/parse"
)

func TestEmit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		exprs []parse.Expression
		want  string
	}{
		{
			name:  "empty",
			exprs: nil,
			want:  "erDiagram\n",
		},
		{
			name: "table renders type before name",
			exprs: []parse.Expression{
				parse.CreateTable{TableName: "users", Fields: []parse.Field{
					{Name: "id", Type: "INT"},
					{Name: "email", Type: "VARCHAR"},
				}},
			},
			want: "erDiagram\n\tusers {\n\t\tINT id\n\t\tVARCHAR email\n\t}\n\n",
		},
		{
			name: "table without fields",
			exprs: []parse.Expression{
				parse.CreateTable{TableName: "empty"},
			},
			want: "erDiagram\n\tempty {\n\t}\n\n",
		},
		{
			name: "foreign key omits the field name",
			exprs: []parse.Expression{
				parse.ForeignKey{TableName: "orders", ForeignKeyName: "fk_user", FieldName: "user_id", ReferencedTable: "users"},
			},
			want: "erDiagram\n\torders ||--|{ users : \"fk_user\"\n",
		},
		{
			name: "input order is kept",
			exprs: []parse.Expression{
				parse.ForeignKey{TableName: "orders", ForeignKeyName: "fk", ReferencedTable: "users"},
				parse.CreateTable{TableName: "users", Fields: []parse.Field{{Name: "id", Type: "INT"}}},
				parse.ForeignKey{TableName: "orders", ForeignKeyName: "fk", ReferencedTable: "users"},
			},
			want: "erDiagram\n" +
				"\torders ||--|{ users : \"fk\"\n" +
				"\tusers {\n\t\tINT id\n\t}\n\n" +
				"\torders ||--|{ users : \"fk\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Emit(tt.exprs))
		})
	}
}

func TestEmitFieldCount(t *testing.T) {
	t.Parallel()

	fields := make([]parse.Field, 25)
	for i := range fields {
		fields[i] = parse.Field{Name: "c", Type: "T"}
	}
	out := Emit([]parse.Expression{parse.CreateTable{TableName: "wide", Fields: fields}})
	assert.Equal(t, 25, strings.Count(out, "\t\tT c\n"))
}

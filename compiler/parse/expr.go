// Package parse groups lexical tokens into schema expressions.
package parse

// Expression is one parsed statement: a CreateTable or a ForeignKey.
type Expression interface {
	expr()
}

// Field is a column of a table, in declaration order.
type Field struct {
	Name string
	Type string
}

// CreateTable is a table definition.
type CreateTable struct {
	TableName string
	Fields    []Field
}

// ForeignKey is a named relationship from TableName to ReferencedTable.
type ForeignKey struct {
	TableName       string
	ForeignKeyName  string
	FieldName       string
	ReferencedTable string
}

func (CreateTable) expr() {}
func (ForeignKey) expr()  {}

// Package ddl renders dialect-correct DDL statements for the schema layer.
package ddl

import "strings"

// ColumnDef describes a column for CREATE TABLE.
type ColumnDef struct {
	Name          string
	Type          string
	Primary       bool
	AutoIncrement bool
	Default       string // emitted verbatim; empty means no DEFAULT clause
}

// CreateTableIfNotExists returns the statement that creates a table when it
// is missing:
//
//	CREATE TABLE IF NOT EXISTS <identifier> ( <col> , <col> ) [<memory clause>];
//
// Each column renders as "name type [PRIMARY KEY] [<auto-increment>] [DEFAULT value]".
// Columns keep their given order. Names, types and defaults are not validated;
// a malformed definition surfaces when the backend rejects the statement.
func CreateTableIfNotExists(identifier string, columns []ColumnDef, d Dialect, memory bool) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(identifier)
	b.WriteString(" ( ")

	clauses := make([]string, len(columns))
	for i, c := range columns {
		clauses[i] = columnClause(c, d)
	}
	b.WriteString(strings.Join(clauses, " , "))

	b.WriteString(" ) ")
	if memory && d.UsesMemoryEngineClause() {
		b.WriteString(d.MemoryEngine)
	}
	b.WriteString(";")
	return b.String()
}

func columnClause(c ColumnDef, d Dialect) string {
	tokens := []string{c.Name, c.Type}
	if c.Primary {
		tokens = append(tokens, "PRIMARY KEY")
	}
	if c.AutoIncrement && d.SupportsAutoIncrement() {
		tokens = append(tokens, d.AutoIncrement)
	}
	if c.Default != "" {
		tokens = append(tokens, "DEFAULT", c.Default)
	}
	return strings.Join(tokens, " ")
}

package ddl

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect describes the DDL capabilities of one SQL backend. Renderers consult
// these facts instead of switching on the backend name.
type Dialect struct {
	Name   string // canonical adapter name used in configuration
	Driver string // database/sql driver name

	// Networked reports a server-based engine. The table identifier prefix
	// only applies to networked backends.
	Networked bool

	// AutoIncrement is the column token emitted for auto-increment columns.
	// Empty means the backend has no such token.
	AutoIncrement string

	// MemoryEngine is the clause appended after the column list of a memory
	// table. Empty means the backend cannot place a table in memory this way.
	MemoryEngine string
}

// SupportsAutoIncrement reports whether auto-increment columns emit a token.
func (d Dialect) SupportsAutoIncrement() bool { return d.AutoIncrement != "" }

// UsesMemoryEngineClause reports whether memory tables get an engine clause.
func (d Dialect) UsesMemoryEngineClause() bool { return d.MemoryEngine != "" }

func (d Dialect) String() string { return d.Name }

// Built-in dialects.
var (
	// MySQL is the networked server dialect.
	MySQL = Dialect{
		Name:          "mysql",
		Driver:        "mysql",
		Networked:     true,
		AutoIncrement: "AUTO_INCREMENT",
		MemoryEngine:  "ENGINE = MEMORY",
	}

	// SQLite is the embedded file dialect.
	SQLite = Dialect{
		Name:   "sqlite",
		Driver: "sqlite3",
	}

	// Postgres is networked but has neither an auto-increment column token
	// (SERIAL is a type) nor a memory storage engine.
	Postgres = Dialect{
		Name:      "postgres",
		Driver:    "postgres",
		Networked: true,
	}

	// DuckDB is an embedded file dialect.
	DuckDB = Dialect{
		Name:   "duckdb",
		Driver: "duckdb",
	}
)

var dialects = map[string]Dialect{
	"mysql":      MySQL,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
	"postgres":   Postgres,
	"postgresql": Postgres,
	"pg":         Postgres,
	"duckdb":     DuckDB,
}

// LookupDialect resolves an adapter name (case-insensitive, aliases allowed).
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported database adapter %q (want one of %s)",
			name, strings.Join(DialectNames(), ", "))
	}
	return d, nil
}

// DialectNames returns the canonical names of the built-in dialects, sorted.
func DialectNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, d := range dialects {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	sort.Strings(names)
	return names
}

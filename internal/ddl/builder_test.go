package ddl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var lockColumns = []ColumnDef{
	{Name: "id", Type: "INTEGER", Primary: true, AutoIncrement: true},
	{Name: "owner", Type: "VARCHAR(64)"},
}

func TestCreateTableIfNotExists(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		columns    []ColumnDef
		dialect    Dialect
		memory     bool
		want       string
	}{
		{
			name:       "sqlite_drops_auto_increment",
			identifier: "locks",
			columns:    lockColumns,
			dialect:    SQLite,
			want:       "CREATE TABLE IF NOT EXISTS locks ( id INTEGER PRIMARY KEY , owner VARCHAR(64) ) ;",
		},
		{
			name:       "sqlite_memory_has_no_engine_clause",
			identifier: "locks",
			columns:    lockColumns,
			dialect:    SQLite,
			memory:     true,
			want:       "CREATE TABLE IF NOT EXISTS locks ( id INTEGER PRIMARY KEY , owner VARCHAR(64) ) ;",
		},
		{
			name:       "mysql_memory",
			identifier: "lwc_locks",
			columns:    lockColumns,
			dialect:    MySQL,
			memory:     true,
			want:       "CREATE TABLE IF NOT EXISTS lwc_locks ( id INTEGER PRIMARY KEY AUTO_INCREMENT , owner VARCHAR(64) ) ENGINE = MEMORY;",
		},
		{
			name:       "mysql_physical",
			identifier: "lwc_locks",
			columns:    lockColumns,
			dialect:    MySQL,
			want:       "CREATE TABLE IF NOT EXISTS lwc_locks ( id INTEGER PRIMARY KEY AUTO_INCREMENT , owner VARCHAR(64) ) ;",
		},
		{
			name:       "postgres_has_neither",
			identifier: "lwc_locks",
			columns:    lockColumns,
			dialect:    Postgres,
			memory:     true,
			want:       "CREATE TABLE IF NOT EXISTS lwc_locks ( id INTEGER PRIMARY KEY , owner VARCHAR(64) ) ;",
		},
		{
			name:       "default_value_verbatim",
			identifier: "history",
			columns: []ColumnDef{
				{Name: "status", Type: "INTEGER", Default: "0"},
				{Name: "note", Type: "TEXT", Default: "'none'"},
			},
			dialect: SQLite,
			want:    "CREATE TABLE IF NOT EXISTS history ( status INTEGER DEFAULT 0 , note TEXT DEFAULT 'none' ) ;",
		},
		{
			name:       "all_modifiers_in_order",
			identifier: "t",
			columns: []ColumnDef{
				{Name: "id", Type: "INT", Primary: true, AutoIncrement: true, Default: "1"},
			},
			dialect: MySQL,
			want:    "CREATE TABLE IF NOT EXISTS t ( id INT PRIMARY KEY AUTO_INCREMENT DEFAULT 1 ) ;",
		},
		{
			name:       "zero_columns",
			identifier: "empty",
			dialect:    SQLite,
			want:       "CREATE TABLE IF NOT EXISTS empty (  ) ;",
		},
		{
			name:       "duplicate_names_kept",
			identifier: "dup",
			columns: []ColumnDef{
				{Name: "a", Type: "INT"},
				{Name: "a", Type: "INT"},
			},
			dialect: DuckDB,
			want:    "CREATE TABLE IF NOT EXISTS dup ( a INT , a INT ) ;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateTableIfNotExists(tt.identifier, tt.columns, tt.dialect, tt.memory)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateTableIfNotExists_ColumnOrder(t *testing.T) {
	cols := []ColumnDef{
		{Name: "c", Type: "INT"},
		{Name: "a", Type: "INT"},
		{Name: "b", Type: "INT"},
	}
	got := CreateTableIfNotExists("t", cols, SQLite, false)

	ic := strings.Index(got, "c INT")
	ia := strings.Index(got, "a INT")
	ib := strings.Index(got, "b INT")
	assert.True(t, ic < ia && ia < ib, "columns must render in the given order: %s", got)
	assert.NotContains(t, got, ", )")
	assert.True(t, strings.HasSuffix(got, ";"))
	assert.Equal(t, 1, strings.Count(got, ";"))
}

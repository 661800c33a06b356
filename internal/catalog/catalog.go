// Package catalog declares the LWC table set: disk tables that hold
// protections and their history, and memory tables for per-session state.
package catalog

import (
	"fmt"

	"github.com/CinisterOne/LWC/internal/db"
	"github.com/CinisterOne/LWC/internal/domain"
	"github.com/CinisterOne/LWC/internal/schema"
)

type tableDef struct {
	name    string
	memory  bool
	columns func() []*schema.Column
}

// id is the surrogate key every LWC table starts with.
func id() *schema.Column {
	return schema.NewColumn("id", "INTEGER").SetPrimary(true).SetAutoIncrement(true)
}

func col(name, typ string) *schema.Column { return schema.NewColumn(name, typ) }

// Memory tables avoid TEXT/BLOB columns, which the MySQL MEMORY engine rejects.
var definitions = []tableDef{
	{name: "protections", columns: func() []*schema.Column {
		return []*schema.Column{
			id(),
			col("owner", "VARCHAR(255)"),
			col("type", "INTEGER"),
			col("x", "INTEGER"),
			col("y", "INTEGER"),
			col("z", "INTEGER"),
			col("data", "TEXT"),
			col("blockId", "INTEGER"),
			col("world", "VARCHAR(255)"),
			col("password", "VARCHAR(255)"),
			col("date", "VARCHAR(255)"),
			col("last_accessed", "INTEGER"),
		}
	}},
	{name: "rights", columns: func() []*schema.Column {
		return []*schema.Column{
			id(),
			col("chest", "INTEGER"),
			col("entity", "VARCHAR(255)"),
			col("rights", "INTEGER"),
			col("type", "INTEGER"),
		}
	}},
	{name: "history", columns: func() []*schema.Column {
		return []*schema.Column{
			id(),
			col("protectionId", "INTEGER"),
			col("player", "VARCHAR(255)"),
			col("x", "INTEGER"),
			col("y", "INTEGER"),
			col("z", "INTEGER"),
			col("type", "INTEGER"),
			col("status", "INTEGER").SetDefaultValue("0"),
			col("metadata", "VARCHAR(255)"),
			col("timestamp", "BIGINT"),
		}
	}},
	{name: "internal", columns: func() []*schema.Column {
		return []*schema.Column{
			col("name", "VARCHAR(40)").SetPrimary(true),
			col("value", "VARCHAR(40)"),
		}
	}},
	{name: "locks", memory: true, columns: func() []*schema.Column {
		return []*schema.Column{
			id(),
			col("password", "VARCHAR(100)"),
		}
	}},
	{name: "actions", memory: true, columns: func() []*schema.Column {
		return []*schema.Column{
			id(),
			col("action", "VARCHAR(20)"),
			col("player", "VARCHAR(255)"),
			col("chest", "INTEGER"),
			col("data", "VARCHAR(255)"),
		}
	}},
	{name: "modes", memory: true, columns: func() []*schema.Column {
		return []*schema.Column{
			id(),
			col("player", "VARCHAR(255)"),
			col("mode", "VARCHAR(255)"),
			col("data", "VARCHAR(255)"),
		}
	}},
	{name: "sessions", memory: true, columns: func() []*schema.Column {
		return []*schema.Column{
			id(),
			col("player", "VARCHAR(255)"),
		}
	}},
}

// Build returns fresh tables for database, disk tables first. Each call
// creates new Column values, so the result can be synced independently.
func Build(database *db.Database, recorder domain.QueryRecorder) ([]*schema.Table, error) {
	tables := make([]*schema.Table, 0, len(definitions))
	for _, def := range definitions {
		t := schema.NewTable(database, recorder, def.name)
		t.SetMemory(def.memory)
		for _, c := range def.columns() {
			if err := t.AddColumn(c); err != nil {
				return nil, fmt.Errorf("catalog %s: %w", def.name, err)
			}
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// Names returns the table names in build order.
func Names() []string {
	names := make([]string, len(definitions))
	for i, def := range definitions {
		names[i] = def.name
	}
	return names
}

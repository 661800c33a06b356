// Package schema models tables and columns and synchronizes them to a
// backend with CREATE TABLE IF NOT EXISTS.
package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/CinisterOne/LWC/internal/db"
	"github.com/CinisterOne/LWC/internal/ddl"
	"github.com/CinisterOne/LWC/internal/domain"
)

var errNoConnection = errors.New("no active connection")

// Table is an ordered set of columns that can create itself on its Database.
// A Table is built once during schema initialization, synced, then dropped.
// It is not safe for concurrent mutation.
type Table struct {
	db       *db.Database
	recorder domain.QueryRecorder
	name     string
	memory   bool
	columns  []*Column
}

// NewTable returns an empty table. recorder may be nil.
func NewTable(database *db.Database, recorder domain.QueryRecorder, name string) *Table {
	return &Table{db: database, recorder: recorder, name: name}
}

// Name returns the table name without prefix.
func (t *Table) Name() string { return t.name }

// Columns returns the columns in attachment order.
func (t *Table) Columns() []*Column { return t.columns }

// InMemory reports whether the table should use a memory storage engine.
func (t *Table) InMemory() bool { return t.memory }

// SetMemory sets the storage locality. Dialects without a memory engine
// clause silently create a regular table.
func (t *Table) SetMemory(memory bool) { t.memory = memory }

// AddColumn appends column and makes t its owner. Duplicate names are not
// checked. A column owned by another table is rejected.
func (t *Table) AddColumn(column *Column) error {
	if column == nil {
		return domain.ErrValidation("table %s: nil column", t.name)
	}
	if column.table != nil && column.table != t {
		return fmt.Errorf("add %s to %s: %w", column.name, t.name, domain.ErrColumnAttached)
	}
	column.table = t
	t.columns = append(t.columns, column)
	return nil
}

// Identifier returns the prefixed table name, reading the prefix now.
func (t *Table) Identifier() string {
	return t.db.Prefix() + t.name
}

// CreateStatement renders the CREATE TABLE IF NOT EXISTS statement for the
// current prefix and dialect.
func (t *Table) CreateStatement() string {
	return t.createStatement(t.Identifier())
}

func (t *Table) createStatement(identifier string) string {
	defs := make([]ddl.ColumnDef, len(t.columns))
	for i, c := range t.columns {
		defs[i] = ddl.ColumnDef{
			Name:          c.name,
			Type:          c.typ,
			Primary:       c.primary,
			AutoIncrement: c.autoIncrement,
			Default:       c.defaultValue,
		}
	}
	return ddl.CreateTableIfNotExists(identifier, defs, t.db.Dialect(), t.memory)
}

// Sync creates the table if it does not exist. The statement handle is
// closed on every path. On success exactly one counter is incremented,
// whether or not the table already existed. Failures are returned as
// *domain.SchemaSyncError.
func (t *Table) Sync(ctx context.Context) error {
	identifier := t.Identifier()
	stmtSQL := t.createStatement(identifier)
	logger := t.db.Logger().With("table", identifier)

	fail := func(err error) error {
		return &domain.SchemaSyncError{Table: identifier, Statement: stmtSQL, Cause: err}
	}

	conn := t.db.Conn()
	if conn == nil {
		return fail(errNoConnection)
	}

	stmt, err := conn.PrepareContext(ctx, stmtSQL)
	if err != nil {
		return fail(fmt.Errorf("prepare: %w", err))
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			logger.Warn("close statement", "error", cerr)
		}
	}()

	if _, err := stmt.ExecContext(ctx); err != nil {
		return fail(fmt.Errorf("exec: %w", err))
	}

	if t.recorder != nil {
		if t.memory {
			t.recorder.AddMemoryQuery()
		} else {
			t.recorder.AddPhysicalQuery()
		}
	}

	logger.Debug("synced table", "columns", len(t.columns), "memory", t.memory)
	return nil
}

// Package db provides the Database handle consumed by the schema layer and
// helpers to open a connection pool for each supported backend.
package db

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/CinisterOne/LWC/internal/ddl"
	"github.com/CinisterOne/LWC/internal/domain"
)

// Conn is the part of a connection the schema layer needs. *sql.DB, *sql.Conn
// and *sql.Tx satisfy it.
type Conn interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Database bundles the active connection with the facts of its backend. It
// carries no schema logic. Many tables may share one Database.
type Database struct {
	dialect ddl.Dialect
	conn    Conn
	prefix  domain.PrefixSource
	logger  *slog.Logger
}

// New returns a Database for an already-open connection. prefix may be nil;
// logger defaults to slog.Default().
func New(dialect ddl.Dialect, conn Conn, prefix domain.PrefixSource, logger *slog.Logger) *Database {
	if logger == nil {
		logger = slog.Default()
	}
	return &Database{
		dialect: dialect,
		conn:    normalizeConn(conn),
		prefix:  prefix,
		logger:  logger.With("dialect", dialect.Name),
	}
}

// normalizeConn turns a nil pool, connection or transaction wrapped in the
// interface into a plain nil.
func normalizeConn(conn Conn) Conn {
	switch c := conn.(type) {
	case *sql.DB:
		if c == nil {
			return nil
		}
	case *sql.Conn:
		if c == nil {
			return nil
		}
	case *sql.Tx:
		if c == nil {
			return nil
		}
	}
	return conn
}

// The accessors below are safe on a nil *Database so that a misconfigured
// table fails with an error instead of a panic.

// Dialect returns the backend dialect. It never changes.
func (d *Database) Dialect() ddl.Dialect {
	if d == nil {
		return ddl.Dialect{}
	}
	return d.dialect
}

// Conn returns the shared connection, or nil if none was supplied.
func (d *Database) Conn() Conn {
	if d == nil {
		return nil
	}
	return d.conn
}

// Logger returns the logger tables should use.
func (d *Database) Logger() *slog.Logger {
	if d == nil {
		return slog.Default()
	}
	return d.logger
}

// Prefix returns the table identifier prefix as configured right now. Only
// networked backends use a prefix; embedded backends always get "".
func (d *Database) Prefix() string {
	if d == nil || !d.dialect.Networked || d.prefix == nil {
		return ""
	}
	return d.prefix.Prefix()
}

// StaticPrefix is a PrefixSource with a fixed value.
type StaticPrefix string

// Prefix implements domain.PrefixSource.
func (p StaticPrefix) Prefix() string { return string(p) }

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/CinisterOne/LWC/internal/config"
	"github.com/CinisterOne/LWC/internal/ddl"
	"github.com/CinisterOne/LWC/internal/domain"
)

// Open opens a connection pool for the configured adapter and wraps it in a
// Database. The caller owns the returned *sql.DB and must close it.
func Open(ctx context.Context, cfg config.DatabaseConfig, prefix domain.PrefixSource, logger *slog.Logger) (*Database, *sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dialect, err := ddl.LookupDialect(cfg.Adapter)
	if err != nil {
		return nil, nil, domain.ErrValidation("%v", err)
	}

	var pool *sql.DB
	switch dialect {
	case ddl.SQLite:
		pool, err = OpenSQLite(ctx, cfg.Path)
	case ddl.DuckDB:
		pool, err = openDSN(ctx, dialect, cfg.Path)
	case ddl.MySQL:
		pool, err = openDSN(ctx, dialect, MySQLDSN(cfg))
	case ddl.Postgres:
		pool, err = openDSN(ctx, dialect, PostgresDSN(cfg))
	default:
		return nil, nil, domain.ErrValidation("no connector for adapter %q", dialect.Name)
	}
	if err != nil {
		return nil, nil, err
	}

	logger.Info("database opened", "adapter", dialect.Name, "target", target(cfg, dialect))
	return New(dialect, pool, prefix, logger), pool, nil
}

func openDSN(ctx context.Context, dialect ddl.Dialect, dsn string) (*sql.DB, error) {
	pool, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect.Name, err)
	}
	pool.SetConnMaxLifetime(time.Hour)
	if err := ping(ctx, pool); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect.Name, err)
	}
	return pool, nil
}

// MySQLDSN builds a go-sql-driver/mysql DSN.
func MySQLDSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	return mc.FormatDSN()
}

// PostgresDSN builds a lib/pq postgres:// URL. net/url escapes the
// credentials and database name.
func PostgresDSN(cfg config.DatabaseConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}

// target describes where the pool points, without credentials.
func target(cfg config.DatabaseConfig, dialect ddl.Dialect) string {
	if dialect.Networked {
		return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)) + "/" + cfg.Database
	}
	return cfg.Path
}

package cli

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CinisterOne/LWC/internal/config"
	"github.com/CinisterOne/LWC/internal/ddl"
)

func TestCatalogSource_KeepsDialectAcrossReload(t *testing.T) {
	oldPrefix := "old_"
	store := config.NewStore(&config.Config{Database: config.DatabaseConfig{Adapter: "mysql", Prefix: &oldPrefix}})
	source := catalogSource(ddl.MySQL, store, slog.New(slog.DiscardHandler))

	tables, err := source()
	require.NoError(t, err)
	require.NotEmpty(t, tables)
	assert.Equal(t, "old_protections", tables[0].Identifier())

	newPrefix := "new_"
	store.Set(&config.Config{Database: config.DatabaseConfig{Adapter: "postgres", Prefix: &newPrefix}})

	tables, err = source()
	require.NoError(t, err)
	for _, tbl := range tables {
		stmt := tbl.CreateStatement()
		assert.True(t, strings.HasPrefix(tbl.Identifier(), "new_"), tbl.Identifier())
		if tbl.Name() == "protections" {
			assert.Contains(t, stmt, "AUTO_INCREMENT")
		}
		if tbl.Name() == "locks" {
			assert.True(t, strings.HasSuffix(stmt, ") ENGINE = MEMORY;"), stmt)
		}
	}
}

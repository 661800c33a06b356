package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaSyncError(t *testing.T) {
	err := fmt.Errorf("startup: %w", &SchemaSyncError{
		Table: "lwc_locks",
		Cause: sql.ErrConnDone,
	})

	var syncErr *SchemaSyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, "lwc_locks", syncErr.Table)
	assert.True(t, errors.Is(err, sql.ErrConnDone))
	assert.Equal(t, "startup: sync table lwc_locks: sql: connection is already closed", err.Error())
}

func TestErrValidation(t *testing.T) {
	err := ErrValidation("bad adapter %q", "oracle")
	assert.Equal(t, `bad adapter "oracle"`, err.Error())
}

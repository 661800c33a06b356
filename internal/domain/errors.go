// Package domain defines the core ports and errors of the schema layer.
package domain

import (
	"errors"
	"fmt"
)

// ErrColumnAttached is returned when a column already owned by one table is
// added to another.
var ErrColumnAttached = errors.New("column already attached to a table")

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// SchemaSyncError reports that a table could not be synchronized. The table
// may or may not exist on the backend afterwards.
type SchemaSyncError struct {
	Table     string // effective identifier, prefix included
	Statement string // DDL that was attempted
	Cause     error
}

func (e *SchemaSyncError) Error() string {
	return fmt.Sprintf("sync table %s: %v", e.Table, e.Cause)
}

func (e *SchemaSyncError) Unwrap() error { return e.Cause }

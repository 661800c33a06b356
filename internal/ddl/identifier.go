package ddl

import (
	"fmt"
	"regexp"
)

// identifierRe allows alphanumeric + underscores, starting with a letter or underscore.
var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// prefixRe is identifierRe without the non-empty requirement.
var prefixRe = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)?$`)

// maxIdentifierLen is the maximum length allowed for a SQL identifier.
const maxIdentifierLen = 64

// ValidateIdentifier checks that name is a plain SQL identifier:
//   - Non-empty
//   - At most 64 characters
//   - Matches [a-zA-Z_][a-zA-Z0-9_]*
//
// The renderer never calls this; it is advisory for configuration values.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxIdentifierLen {
		return fmt.Errorf("name must be at most %d characters", maxIdentifierLen)
	}
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("name must match [a-zA-Z_][a-zA-Z0-9_]*")
	}
	return nil
}

// ValidatePrefix checks that a table prefix can be concatenated with a plain
// identifier and still be one. The empty prefix is valid.
func ValidatePrefix(prefix string) error {
	if len(prefix) > maxIdentifierLen {
		return fmt.Errorf("prefix must be at most %d characters", maxIdentifierLen)
	}
	if !prefixRe.MatchString(prefix) {
		return fmt.Errorf("prefix %q must match [a-zA-Z_][a-zA-Z0-9_]*", prefix)
	}
	return nil
}

package schema

// Column describes one field of a table. Names and types are not validated;
// a malformed value surfaces when the backend rejects the generated DDL.
type Column struct {
	name          string
	typ           string
	primary       bool
	autoIncrement bool
	defaultValue  string

	table *Table // owner, set by Table.AddColumn
}

// NewColumn returns a column with the given name and SQL type.
func NewColumn(name, typ string) *Column {
	return &Column{name: name, typ: typ}
}

// SetPrimary marks the column as the primary key.
func (c *Column) SetPrimary(primary bool) *Column {
	c.primary = primary
	return c
}

// SetAutoIncrement requests auto-increment. Dialects without an
// auto-increment token ignore it.
func (c *Column) SetAutoIncrement(autoIncrement bool) *Column {
	c.autoIncrement = autoIncrement
	return c
}

// SetDefaultValue sets the DEFAULT expression, emitted verbatim. The empty
// string means no DEFAULT clause.
func (c *Column) SetDefaultValue(value string) *Column {
	c.defaultValue = value
	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the SQL type as given.
func (c *Column) Type() string { return c.typ }

// IsPrimary reports whether the column is the primary key.
func (c *Column) IsPrimary() bool { return c.primary }

// AutoIncrement reports whether auto-increment was requested.
func (c *Column) AutoIncrement() bool { return c.autoIncrement }

// DefaultValue returns the DEFAULT expression, or "" for none.
func (c *Column) DefaultValue() string { return c.defaultValue }

// Table returns the owning table, or nil if the column is not attached.
func (c *Column) Table() *Table { return c.table }

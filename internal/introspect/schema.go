package introspect

import "strings"

// UnboundedLength is the catalog sentinel for max-length character columns.
const UnboundedLength = -1

// Column represents a table column.
type Column struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Nullable  bool   `json:"nullable"`
	MaxLength *int64 `json:"max_length,omitempty"` // character types only
}

// Index represents a primary key or secondary index with its key columns
// in key-ordinal order.
type Index struct {
	Name       string   `json:"name"`
	PrimaryKey bool     `json:"primary_key"`
	Unique     bool     `json:"unique,omitempty"`
	Columns    []string `json:"columns"`
}

// IndexColumn is one row of a catalog index query: a single key column of
// a single index.
type IndexColumn struct {
	Index      string
	PrimaryKey bool
	Unique     bool
	Column     string
}

// Table represents a database table, its columns and its indexes.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Indexes []Index  `json:"indexes,omitempty"`
}

// HasLength reports whether the column carries a bounded length suffix.
func (c Column) HasLength() bool {
	return IsCharacterType(c.Type) && c.MaxLength != nil && *c.MaxLength != UnboundedLength
}

// IsCharacterType reports whether sqlType takes a length in column definitions.
func IsCharacterType(sqlType string) bool {
	switch strings.ToLower(sqlType) {
	case "varchar", "char", "nvarchar", "nchar":
		return true
	}
	return false
}

// ColumnNames returns the column names in order.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// GroupIndexes merges catalog rows sharing an index name into one Index.
// Indexes keep the order in which they were first seen and columns keep
// the row order, which the catalog queries sort by key ordinal.
func GroupIndexes(rows []IndexColumn) []Index {
	var out []Index
	pos := map[string]int{}
	for _, r := range rows {
		i, ok := pos[r.Index]
		if !ok {
			i = len(out)
			pos[r.Index] = i
			out = append(out, Index{Name: r.Index, PrimaryKey: r.PrimaryKey, Unique: r.Unique})
		}
		out[i].Columns = append(out[i].Columns, r.Column)
	}
	return out
}

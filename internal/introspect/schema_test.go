package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func length(n int64) *int64 { return &n }

func TestGroupIndexes(t *testing.T) {
	rows := []IndexColumn{
		{Index: "ix1", PrimaryKey: true, Unique: true, Column: "colA"},
		{Index: "ix1", PrimaryKey: true, Unique: true, Column: "colB"},
		{Index: "ix2", Column: "colC"},
	}

	got := GroupIndexes(rows)

	assert.Equal(t, []Index{
		{Name: "ix1", PrimaryKey: true, Unique: true, Columns: []string{"colA", "colB"}},
		{Name: "ix2", Columns: []string{"colC"}},
	}, got)
}

func TestGroupIndexesEmpty(t *testing.T) {
	assert.Empty(t, GroupIndexes(nil))
}

func TestColumnHasLength(t *testing.T) {
	var tests = []struct {
		name   string
		column Column
		want   bool
	}{
		{"varchar with length", Column{Type: "varchar", MaxLength: length(50)}, true},
		{"upper case nchar", Column{Type: "NCHAR", MaxLength: length(10)}, true},
		{"varchar max", Column{Type: "nvarchar", MaxLength: length(UnboundedLength)}, false},
		{"varchar without length", Column{Type: "varchar"}, false},
		{"int ignores length", Column{Type: "int", MaxLength: length(4)}, false},
		{"text is not character family", Column{Type: "text", MaxLength: length(2147483647)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.column.HasLength())
		})
	}
}

func TestColumnNames(t *testing.T) {
	cols := []Column{{Name: "id"}, {Name: "name"}, {Name: "created"}}
	assert.Equal(t, []string{"id", "name", "created"}, ColumnNames(cols))
}

package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sqldump/internal/db"
	"sqldump/internal/dump"
	"sqldump/internal/introspect"
)

func TestRegisteredDialects(t *testing.T) {
	rd := db.RegisteredDialects()
	for _, name := range []string{"sqlserver", "mssql", "postgres", "postgresql", "mysql", "mariadb", "sqlite", "sqlite3"} {
		assert.Contains(t, rd, name)
	}
}

func TestSplitDeclaredType(t *testing.T) {
	var tests = []struct {
		declared string
		wantType string
		wantLen  int64 // 0 means no length
	}{
		{"varchar(50)", "varchar", 50},
		{"NVARCHAR( 12 )", "NVARCHAR", 12},
		{"char(1)", "char", 1},
		{"decimal(10,2)", "decimal(10,2)", 0},
		{"varchar(max)", "varchar(max)", 0},
		{"varbinary(16)", "varbinary(16)", 0},
		{"TEXT", "TEXT", 0},
		{"varchar(50", "varchar(50", 0},
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			typ, n := splitDeclaredType(tt.declared)
			assert.Equal(t, tt.wantType, typ)
			if tt.wantLen == 0 {
				assert.Nil(t, n)
			} else if assert.NotNil(t, n) {
				assert.Equal(t, tt.wantLen, *n)
			}
		})
	}
}

func TestPgType(t *testing.T) {
	assert.Equal(t, "varchar", pgType("character varying"))
	assert.Equal(t, "char", pgType("character"))
	assert.Equal(t, "integer", pgType("integer"))
	assert.Equal(t, "timestamp without time zone", pgType("timestamp without time zone"))
}

func TestMssqlType(t *testing.T) {
	assert.Equal(t, "rowversion", mssqlType("timestamp"))
	assert.Equal(t, "rowversion", mssqlType("TIMESTAMP"))
	assert.Equal(t, "datetime2", mssqlType("datetime2"))
}

func TestRenamePrimary(t *testing.T) {
	got := renamePrimary("orders", []introspect.Index{
		{Name: "PRIMARY", PrimaryKey: true, Unique: true, Columns: []string{"id"}},
		{Name: "ix_customer", Columns: []string{"customer_id"}},
	})

	assert.Equal(t, []introspect.Index{
		{Name: "pk_orders", PrimaryKey: true, Unique: true, Columns: []string{"id"}},
		{Name: "ix_customer", Columns: []string{"customer_id"}},
	}, got)
}

func TestMssqlConvertValue(t *testing.T) {
	guid := introspect.Column{Name: "rowguid", Type: "uniqueidentifier"}
	wire := []byte{
		0x04, 0x03, 0x02, 0x01, 0x06, 0x05, 0x08, 0x07,
		0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
	}

	var tests = []struct {
		name string
		col  introspect.Column
		in   any
		want any
	}{
		{"guid bytes", guid, wire, "01020304-0506-0708-090A-0B0C0D0E0F10"},
		{"short bytes are kept", guid, []byte{1, 2}, []byte{1, 2}},
		{"non-bytes are kept", guid, "already text", "already text"},
		{"other column types", introspect.Column{Name: "b", Type: "varbinary"}, wire, wire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mssqlDialect{}.ConvertValue(tt.col, tt.in))
		})
	}
}

func TestDialectBinaryStyle(t *testing.T) {
	blob := []byte{0x01, 0xFF}

	var tests = []struct {
		name    string
		dialect db.Dialect
		want    string
	}{
		{"sqlserver", mssqlDialect{}, "0x01FF"},
		{"mysql", myDialect{}, "0x01FF"},
		{"sqlite", sqliteDialect{}, "X'01FF'"},
		{"postgres", pgDialect{}, `'\x01FF'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var style dump.BinaryStyle
			if bs, ok := tt.dialect.(dump.BinaryStyler); ok {
				style = bs.BinaryStyle()
			}
			got, err := dump.FormatLiteralStyle(blob, dump.KindBinary, style)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

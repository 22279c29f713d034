package dump

import (
	"strconv"
	"strings"

	"sqldump/internal/introspect"
)

const columnIndent = " "

// DropTable renders an idempotent DROP TABLE statement.
func DropTable(table string) string {
	return "DROP TABLE IF EXISTS " + table + ";\n"
}

// CreateTable renders a CREATE TABLE statement with one column per line in
// the given order.
func CreateTable(table string, columns []introspect.Column) string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(table)
	sb.WriteString(" (\n")
	for i, c := range columns {
		sb.WriteString(columnIndent)
		sb.WriteString(columnDefinition(c))
		if i < len(columns)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(");\n")
	return sb.String()
}

func columnDefinition(c introspect.Column) string {
	def := c.Name + " " + c.Type
	if c.HasLength() {
		def += "(" + strconv.FormatInt(*c.MaxLength, 10) + ")"
	}
	if !c.Nullable {
		def += " NOT NULL"
	}
	return def
}

// Indexes renders one statement per index: primary keys first as ALTER
// TABLE constraints, then secondary indexes, each group in supplied order.
func Indexes(table string, indexes []introspect.Index) []string {
	var pks, secondary []string
	for _, ix := range indexes {
		cols := strings.Join(ix.Columns, ", ")
		if ix.PrimaryKey {
			pks = append(pks, "ALTER TABLE "+table+" ADD CONSTRAINT "+ix.Name+" PRIMARY KEY ("+cols+");\n")
			continue
		}
		create := "CREATE INDEX "
		if ix.Unique {
			create = "CREATE UNIQUE INDEX "
		}
		secondary = append(secondary, create+ix.Name+" ON "+table+" ("+cols+");\n")
	}
	return append(pks, secondary...)
}

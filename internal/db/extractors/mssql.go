package extractors

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	mssql "github.com/denisenkom/go-mssqldb"

	"sqldump/internal/db"
	"sqldump/internal/introspect"
	"sqldump/internal/logger"
)

// mssqlDialect implements Dialect for Microsoft SQL Server.
type mssqlDialect struct{}

func (mssqlDialect) ListBaseTables(ctx context.Context, q db.Queryer) ([]string, error) {
	tables, err := queryStrings(ctx, q, `
        SELECT TABLE_NAME
        FROM INFORMATION_SCHEMA.TABLES
        WHERE TABLE_TYPE = 'BASE TABLE'`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	return tables, nil
}

func (mssqlDialect) DescribeColumns(ctx context.Context, q db.Queryer, table string) ([]introspect.Column, error) {
	cr, err := q.QueryContext(ctx, `
        SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE, CHARACTER_MAXIMUM_LENGTH
        FROM INFORMATION_SCHEMA.COLUMNS
        WHERE TABLE_NAME = @table
        ORDER BY ORDINAL_POSITION`, sql.Named("table", table))
	if err != nil {
		return nil, fmt.Errorf("query columns for %s: %w", table, err)
	}
	defer cr.Close()

	var cols []introspect.Column
	for cr.Next() {
		var col introspect.Column
		var nullable string
		var length sql.NullInt64
		if err := cr.Scan(&col.Name, &col.Type, &nullable, &length); err != nil {
			return nil, fmt.Errorf("scan column for %s: %w", table, err)
		}
		col.Type = mssqlType(col.Type)
		col.Nullable = nullable == "YES"
		col.MaxLength = maxLength(length)
		cols = append(cols, col)
	}
	return cols, cr.Err()
}

func (mssqlDialect) DescribeIndexes(ctx context.Context, q db.Queryer, table string) ([]introspect.Index, error) {
	// included columns carry key_ordinal 0 and are not part of the key
	return queryIndexes(ctx, q, table, `
        SELECT
            i.name AS IndexName,
            i.is_primary_key AS IsPrimaryKey,
            i.is_unique AS IsUnique,
            c.name AS ColumnName
        FROM sys.indexes AS i
        JOIN sys.index_columns AS ic
          ON i.object_id = ic.object_id AND i.index_id = ic.index_id
        JOIN sys.columns AS c
          ON ic.object_id = c.object_id AND ic.column_id = c.column_id
        WHERE i.object_id = OBJECT_ID(@table)
          AND ic.is_included_column = 0
        ORDER BY i.name, ic.key_ordinal`, sql.Named("table", table))
}

// ConvertValue renders uniqueidentifier columns as GUID text; the driver
// returns them as 16 bytes in mixed-endian wire order.
func (mssqlDialect) ConvertValue(col introspect.Column, v any) any {
	if !strings.EqualFold(col.Type, "uniqueidentifier") {
		return v
	}
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	var u mssql.UniqueIdentifier
	if err := u.Scan(b); err != nil {
		logger.Warn("column %s: %v", col.Name, err)
		return v
	}
	return u.String()
}

// mssqlType maps catalog type names that do not round-trip. INFORMATION_SCHEMA
// reports rowversion columns under the deprecated name timestamp.
func mssqlType(t string) string {
	if strings.EqualFold(t, "timestamp") {
		return "rowversion"
	}
	return t
}

func init() {
	db.Register("sqlserver", mssqlDialect{})
	db.Register("mssql", mssqlDialect{})
}

package extractors

import (
	"context"
	"database/sql"
	"fmt"

	"sqldump/internal/db"
	"sqldump/internal/introspect"
)

// myDialect implements Dialect for MySQL (information_schema), scoped to the
// connection's default database.
type myDialect struct{}

func (myDialect) ListBaseTables(ctx context.Context, q db.Queryer) ([]string, error) {
	tables, err := queryStrings(ctx, q, `
        SELECT table_name
        FROM information_schema.tables
        WHERE table_type = 'BASE TABLE'
          AND table_schema = DATABASE()`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	return tables, nil
}

func (myDialect) DescribeColumns(ctx context.Context, q db.Queryer, table string) ([]introspect.Column, error) {
	cr, err := q.QueryContext(ctx, `
        SELECT column_name, data_type, is_nullable = 'YES', character_maximum_length
        FROM information_schema.columns
        WHERE table_schema = DATABASE() AND table_name = ?
        ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, fmt.Errorf("query columns for %s: %w", table, err)
	}
	defer cr.Close()

	var cols []introspect.Column
	for cr.Next() {
		var col introspect.Column
		var length sql.NullInt64
		if err := cr.Scan(&col.Name, &col.Type, &col.Nullable, &length); err != nil {
			return nil, fmt.Errorf("scan column for %s: %w", table, err)
		}
		col.MaxLength = maxLength(length)
		cols = append(cols, col)
	}
	return cols, cr.Err()
}

func (myDialect) DescribeIndexes(ctx context.Context, q db.Queryer, table string) ([]introspect.Index, error) {
	indexes, err := queryIndexes(ctx, q, table, `
        SELECT index_name, index_name = 'PRIMARY', non_unique = 0, column_name
        FROM information_schema.statistics
        WHERE table_schema = DATABASE() AND table_name = ?
          AND column_name IS NOT NULL
        ORDER BY index_name, seq_in_index`, table)
	if err != nil {
		return nil, err
	}
	return renamePrimary(table, indexes), nil
}

// renamePrimary gives primary keys a usable constraint name; MySQL reports
// every primary key as PRIMARY, which is a reserved word.
func renamePrimary(table string, indexes []introspect.Index) []introspect.Index {
	for i := range indexes {
		if indexes[i].PrimaryKey {
			indexes[i].Name = "pk_" + table
		}
	}
	return indexes
}

func init() {
	db.Register("mysql", myDialect{})
	db.Register("mariadb", myDialect{})
}

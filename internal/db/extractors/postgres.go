package extractors

import (
	"context"
	"database/sql"
	"fmt"

	"sqldump/internal/db"
	"sqldump/internal/dump"
	"sqldump/internal/introspect"
)

// pgDialect implements Dialect using information_schema + pg_catalog
// queries, scoped to current_schema() because dumped names are unqualified.
type pgDialect struct{}

func (pgDialect) ListBaseTables(ctx context.Context, q db.Queryer) ([]string, error) {
	tables, err := queryStrings(ctx, q, `
        SELECT table_name
        FROM information_schema.tables
        WHERE table_type = 'BASE TABLE'
          AND table_schema = current_schema()`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	return tables, nil
}

func (pgDialect) DescribeColumns(ctx context.Context, q db.Queryer, table string) ([]introspect.Column, error) {
	cr, err := q.QueryContext(ctx, `
        SELECT column_name, data_type, is_nullable = 'YES', character_maximum_length
        FROM information_schema.columns
        WHERE table_schema = current_schema() AND table_name = $1
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
		col.Type = pgType(col.Type)
		col.MaxLength = maxLength(length)
		cols = append(cols, col)
	}
	return cols, cr.Err()
}

func (pgDialect) DescribeIndexes(ctx context.Context, q db.Queryer, table string) ([]introspect.Index, error) {
	// expression keys (attnum 0) have no column and drop out of the join
	return queryIndexes(ctx, q, table, `
        SELECT i.relname, ix.indisprimary, ix.indisunique, a.attname
        FROM pg_index ix
        JOIN pg_class t ON t.oid = ix.indrelid
        JOIN pg_class i ON i.oid = ix.indexrelid
        JOIN pg_namespace ns ON ns.oid = t.relnamespace
        CROSS JOIN LATERAL unnest(ix.indkey::int2[]) WITH ORDINALITY AS k(attnum, ord)
        JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = k.attnum
        WHERE ns.nspname = current_schema() AND t.relname = $1
        ORDER BY i.relname, k.ord`, table)
}

// pgType shortens the SQL-standard spellings information_schema reports for
// character types so they take a length suffix.
func pgType(t string) string {
	switch t {
	case "character varying":
		return "varchar"
	case "character":
		return "char"
	}
	return t
}

// BinaryStyle is the bytea hex form '\x..'.
func (pgDialect) BinaryStyle() dump.BinaryStyle { return dump.EscapedBinary }

func init() {
	db.Register("postgres", pgDialect{})
	db.Register("postgresql", pgDialect{})
}

package extractors

import (
	"context"
	"database/sql"
	"fmt"

	"sqldump/internal/db"
	"sqldump/internal/introspect"
)

// queryStrings collects the first column of every row.
func queryStrings(ctx context.Context, q db.Queryer, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// queryIndexes runs an index query returning (index name, is primary key,
// is unique, column name) rows ordered by index and key ordinal, and groups
// the result.
func queryIndexes(ctx context.Context, q db.Queryer, table, query string, args ...any) ([]introspect.Index, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query indexes for %s: %w", table, err)
	}
	defer rows.Close()

	var cols []introspect.IndexColumn
	for rows.Next() {
		var ic introspect.IndexColumn
		if err := rows.Scan(&ic.Index, &ic.PrimaryKey, &ic.Unique, &ic.Column); err != nil {
			return nil, fmt.Errorf("scan index for %s: %w", table, err)
		}
		cols = append(cols, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read indexes for %s: %w", table, err)
	}
	return introspect.GroupIndexes(cols), nil
}

// maxLength maps a nullable catalog length onto Column.MaxLength.
func maxLength(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

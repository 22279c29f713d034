//go:build oracle
// +build oracle

package extractors

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/godror/godror"

	"sqldump/internal/db"
	"sqldump/internal/dump"
	"sqldump/internal/introspect"
)

// oracleDialect implements Dialect for Oracle, scoped to the connected
// user's own tables.
type oracleDialect struct{}

func (oracleDialect) ListBaseTables(ctx context.Context, q db.Queryer) ([]string, error) {
	tables, err := queryStrings(ctx, q, `
	    SELECT table_name
	    FROM user_tables
	    WHERE nested = 'NO'`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	return tables, nil
}

func (oracleDialect) DescribeColumns(ctx context.Context, q db.Queryer, table string) ([]introspect.Column, error) {
	cr, err := q.QueryContext(ctx, `
            SELECT column_name, data_type, nullable, char_length
            FROM user_tab_columns
            WHERE table_name = :1
            ORDER BY column_id`, table)
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
		col.Type = oracleType(col.Type)
		col.Nullable = (nullable == "Y")
		if introspect.IsCharacterType(col.Type) {
			col.MaxLength = maxLength(length)
		}
		cols = append(cols, col)
	}
	return cols, cr.Err()
}

func (oracleDialect) DescribeIndexes(ctx context.Context, q db.Queryer, table string) ([]introspect.Index, error) {
	return queryIndexes(ctx, q, table, `
            SELECT ic.index_name,
                   CASE WHEN c.constraint_type = 'P' THEN 1 ELSE 0 END,
                   CASE WHEN i.uniqueness = 'UNIQUE' THEN 1 ELSE 0 END,
                   ic.column_name
            FROM user_ind_columns ic
            JOIN user_indexes i ON i.index_name = ic.index_name
            LEFT JOIN user_constraints c
              ON c.index_name = ic.index_name AND c.constraint_type = 'P'
            WHERE ic.table_name = :1
            ORDER BY ic.index_name, ic.column_position`, table)
}

// oracleType maps the VARCHAR2 family onto the names that take a length.
func oracleType(t string) string {
	switch strings.ToUpper(t) {
	case "VARCHAR2":
		return "varchar"
	case "NVARCHAR2":
		return "nvarchar"
	}
	return t
}

// BinaryStyle is HEXTORAW('..').
func (oracleDialect) BinaryStyle() dump.BinaryStyle { return dump.HexToRawBinary }

func init() {
	db.Register("godror", oracleDialect{})
	db.Register("oracle", oracleDialect{})
}

package extractors

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"sqldump/internal/db"
	"sqldump/internal/dump"
	"sqldump/internal/introspect"
	"sqldump/internal/logger"
)

// sqliteDialect implements Dialect for SQLite.
type sqliteDialect struct{}

func (sqliteDialect) ListBaseTables(ctx context.Context, q db.Queryer) ([]string, error) {
	tables, err := queryStrings(ctx, q, `
	    SELECT name
	    FROM sqlite_master
	    WHERE type = 'table'
	    AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	return tables, nil
}

func (sqliteDialect) DescribeColumns(ctx context.Context, q db.Queryer, table string) ([]introspect.Column, error) {
	pr, err := q.QueryContext(ctx, `
	    SELECT name, type, "notnull"
	    FROM pragma_table_info(?)
	    ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("query columns for %s: %w", table, err)
	}
	defer pr.Close()

	var cols []introspect.Column
	for pr.Next() {
		var name, ctype string
		var notnull int
		if err := pr.Scan(&name, &ctype, &notnull); err != nil {
			return nil, fmt.Errorf("scan column for %s: %w", table, err)
		}
		col := introspect.Column{Name: name, Nullable: notnull == 0}
		col.Type, col.MaxLength = splitDeclaredType(ctype)
		cols = append(cols, col)
	}
	return cols, pr.Err()
}

func (sqliteDialect) DescribeIndexes(ctx context.Context, q db.Queryer, table string) ([]introspect.Index, error) {
	// the primary key of a rowid table has no index entry, so it is read
	// from table_info for every table
	pk, err := queryStrings(ctx, q, `
	    SELECT name
	    FROM pragma_table_info(?)
	    WHERE pk > 0
	    ORDER BY pk`, table)
	if err != nil {
		return nil, fmt.Errorf("query primary key for %s: %w", table, err)
	}

	// origin 'c' is CREATE INDEX; 'pk' and 'u' are automatic indexes whose
	// sqlite_ names cannot be recreated
	indexes, err := queryIndexes(ctx, q, table, `
	    SELECT il.name, 0, il."unique", ii.name
	    FROM pragma_index_list(?) AS il, pragma_index_info(il.name) AS ii
	    WHERE il.origin = 'c'
	    AND ii.name IS NOT NULL
	    ORDER BY il.name, ii.seqno`, table)
	if err != nil {
		return nil, err
	}

	if len(pk) == 0 {
		return indexes, nil
	}
	logger.Debug("primary key of %s: %v", table, pk)
	return append([]introspect.Index{{Name: "pk_" + table, PrimaryKey: true, Unique: true, Columns: pk}}, indexes...), nil
}

// splitDeclaredType separates the length from a declared character type,
// "varchar(50)" becoming "varchar" and 50. Other declarations, including
// "decimal(10,2)", are returned unchanged.
func splitDeclaredType(declared string) (string, *int64) {
	open := strings.IndexByte(declared, '(')
	if open < 0 || !strings.HasSuffix(declared, ")") {
		return declared, nil
	}
	base := strings.TrimSpace(declared[:open])
	if !introspect.IsCharacterType(base) {
		return declared, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(declared[open+1:len(declared)-1]), 10, 64)
	if err != nil {
		return declared, nil
	}
	return base, &n
}

// BinaryStyle is X'..'; SQLite reads 0x.. as an integer.
func (sqliteDialect) BinaryStyle() dump.BinaryStyle { return dump.XQuotedBinary }

func init() {
	db.Register("sqlite3", sqliteDialect{})
	db.Register("sqlite", sqliteDialect{})
}

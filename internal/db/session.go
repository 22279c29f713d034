package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"sqldump/internal/dump"
	"sqldump/internal/introspect"
)

type session struct {
	conn    *sql.Conn
	dialect Dialect
}

func (s *session) ListBaseTables(ctx context.Context) ([]string, error) {
	return s.dialect.ListBaseTables(ctx, s.conn)
}

func (s *session) DescribeColumns(ctx context.Context, table string) ([]introspect.Column, error) {
	return s.dialect.DescribeColumns(ctx, s.conn, table)
}

func (s *session) DescribeIndexes(ctx context.Context, table string) ([]introspect.Index, error) {
	return s.dialect.DescribeIndexes(ctx, s.conn, table)
}

// Rows scans the whole table. The result columns must match the described
// columns by name and position.
func (s *session) Rows(ctx context.Context, table string, columns []introspect.Column) (dump.RowIterator, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, err
	}
	names, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, err
	}
	if err := matchColumns(names, columns); err != nil {
		rows.Close()
		return nil, dump.NewError(dump.SchemaResolutionError, table, err)
	}

	it := &rowIterator{rows: rows, columns: columns, values: make([]any, len(columns)), dest: make([]any, len(columns))}
	for i := range it.values {
		it.dest[i] = &it.values[i]
	}
	if conv, ok := s.dialect.(ValueConverter); ok {
		it.convert = conv
	}
	return it, nil
}

// BinaryStyle passes on the dialect's binary literal form. Dialects that
// do not implement dump.BinaryStyler get the 0x form.
func (s *session) BinaryStyle() dump.BinaryStyle {
	if bs, ok := s.dialect.(dump.BinaryStyler); ok {
		return bs.BinaryStyle()
	}
	return nil
}

func (s *session) Close() error { return s.conn.Close() }

func matchColumns(got []string, want []introspect.Column) error {
	if len(got) != len(want) {
		return fmt.Errorf("result has %d columns, catalog has %d", len(got), len(want))
	}
	for i, c := range want {
		if !strings.EqualFold(got[i], c.Name) {
			return fmt.Errorf("result column %d is %s, catalog has %s", i+1, got[i], c.Name)
		}
	}
	return nil
}

type rowIterator struct {
	rows    *sql.Rows
	columns []introspect.Column
	values  []any
	dest    []any
	convert ValueConverter
}

func (it *rowIterator) Next() bool { return it.rows.Next() }

// Values scans the current row. The returned slice is fresh for every row.
func (it *rowIterator) Values() ([]any, error) {
	if err := it.rows.Scan(it.dest...); err != nil {
		return nil, err
	}
	out := make([]any, len(it.values))
	for i, v := range it.values {
		if it.convert != nil && v != nil {
			v = it.convert.ConvertValue(it.columns[i], v)
		}
		out[i] = v
	}
	return out, nil
}

func (it *rowIterator) Err() error { return it.rows.Err() }

func (it *rowIterator) Close() error { return it.rows.Close() }

package dump

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

import (
	"context"

	"sqldump/internal/introspect"
)

// CatalogSource answers metadata queries for the tables being dumped.
type CatalogSource interface {
	// ListBaseTables returns base tables only, in catalog order.
	ListBaseTables(ctx context.Context) ([]string, error)
	// DescribeColumns returns columns in catalog ordinal order. An unknown
	// table yields no columns.
	DescribeColumns(ctx context.Context, table string) ([]introspect.Column, error)
	// DescribeIndexes returns indexes grouped by name with key columns in
	// ordinal order.
	DescribeIndexes(ctx context.Context, table string) ([]introspect.Index, error)
}

// RowSource opens a forward-only scan over a table.
type RowSource interface {
	Rows(ctx context.Context, table string, columns []introspect.Column) (RowIterator, error)
}

// RowIterator walks a table scan. Values returns the current row in column
// order and is only valid after Next returned true.
type RowIterator interface {
	Next() bool
	Values() ([]any, error)
	Err() error
	Close() error
}

// Session is one connection's worth of catalog and row access. A session
// must not be shared between concurrent table dumps.
type Session interface {
	CatalogSource
	RowSource
	Close() error
}

// Source hands out sessions.
type Source interface {
	Session(ctx context.Context) (Session, error)
}

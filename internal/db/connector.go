package db

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"sqldump/internal/dump"
	"sqldump/internal/introspect"
	"sqldump/pkg/config"
)

// Queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Dialect reads the catalog of one database family.
type Dialect interface {
	// ListBaseTables returns base table names, views excluded.
	ListBaseTables(ctx context.Context, q Queryer) ([]string, error)

	// DescribeColumns returns the columns of table in ordinal order.
	DescribeColumns(ctx context.Context, q Queryer, table string) ([]introspect.Column, error)

	// DescribeIndexes returns primary keys and indexes of table, grouped by name.
	DescribeIndexes(ctx context.Context, q Queryer, table string) ([]introspect.Index, error)
}

// A Dialect whose database does not read 0x01FF back as bytes also
// implements dump.BinaryStyler.

// ValueConverter is implemented by dialects whose driver hands back values
// that need reshaping before literal formatting.
type ValueConverter interface {
	ConvertValue(col introspect.Column, v any) any
}

var dialects = map[string]Dialect{}

// Register makes a Dialect available under name.
func Register(name string, d Dialect) {
	dialects[strings.ToLower(name)] = d
}

// listRegistered returns the registered dialect keys (for diagnostics).
func listRegistered() []string {
	keys := make([]string, 0, len(dialects))
	for k := range dialects {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// RegisteredDialects is a helper that allows main to print registered dialects
func RegisteredDialects() []string {
	return listRegistered()
}

// Source is a dump.Source backed by a database/sql pool.
type Source struct {
	db      *sql.DB
	dialect Dialect
	driver  string
}

var _ dump.Source = (*Source)(nil)

// Connect opens and pings the database. Failures are connectivity errors.
func Connect(ctx context.Context, driver, dsn string, timeoutSec int) (*Source, error) {
	driver = config.NormalizeDriver(driver)
	dialect, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("dialect not registered: %q (available: %v)", driver, listRegistered())
	}
	dbConn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, dump.NewError(dump.ConnectivityError, "", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
	defer cancel()
	if err := dbConn.PingContext(pingCtx); err != nil {
		dbConn.Close()
		return nil, dump.NewError(dump.ConnectivityError, "", fmt.Errorf("ping %s: %w", driver, err))
	}
	return &Source{db: dbConn, dialect: dialect, driver: driver}, nil
}

// NewSource wraps an open pool.
func NewSource(dbConn *sql.DB, driver string) (*Source, error) {
	driver = config.NormalizeDriver(driver)
	dialect, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("dialect not registered: %q (available: %v)", driver, listRegistered())
	}
	return &Source{db: dbConn, dialect: dialect, driver: driver}, nil
}

// Driver returns the normalized driver name.
func (s *Source) Driver() string { return s.driver }

// Session pins one pooled connection for catalog queries and a data cursor.
func (s *Source) Session(ctx context.Context) (dump.Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, dump.NewError(dump.ConnectivityError, "", fmt.Errorf("acquire connection: %w", err))
	}
	return &session{conn: conn, dialect: s.dialect}, nil
}

// Close closes the pool.
func (s *Source) Close() error { return s.db.Close() }

package dump

import (
	"context"
	"errors"
	"sync"

	"sqldump/internal/introspect"
)

type fakeTable struct {
	columns []introspect.Column
	indexes []introspect.Index
	rows    [][]any
	rowsErr error // returned by Err after the rows are exhausted
	gate    chan struct{} // Rows waits for it to be closed when set
}

// fakeSource is an in-memory catalog. Every session sees the same tables.
type fakeSource struct {
	mu       sync.Mutex
	tables   map[string]*fakeTable
	order    []string
	listErr  error
	binary   BinaryStyle
	sessions int
	open     int
	maxOpen  int
}

func newFakeSource() *fakeSource {
	return &fakeSource{tables: map[string]*fakeTable{}}
}

func (f *fakeSource) add(name string, t *fakeTable) *fakeSource {
	f.tables[name] = t
	f.order = append(f.order, name)
	return f
}

func (f *fakeSource) Session(ctx context.Context) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions++
	f.open++
	f.maxOpen = max(f.maxOpen, f.open)
	if f.binary != nil {
		return &styledSession{fakeSession: &fakeSession{src: f}, style: f.binary}, nil
	}
	return &fakeSession{src: f}, nil
}

func (f *fakeSource) sessionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions
}

type fakeSession struct {
	src    *fakeSource
	closed bool
}

func (s *fakeSession) ListBaseTables(ctx context.Context) ([]string, error) {
	if s.src.listErr != nil {
		return nil, s.src.listErr
	}
	return append([]string(nil), s.src.order...), nil
}

func (s *fakeSession) DescribeColumns(ctx context.Context, table string) ([]introspect.Column, error) {
	if t, ok := s.src.tables[table]; ok {
		return t.columns, nil
	}
	return nil, nil
}

func (s *fakeSession) DescribeIndexes(ctx context.Context, table string) ([]introspect.Index, error) {
	return s.src.tables[table].indexes, nil
}

func (s *fakeSession) Rows(ctx context.Context, table string, columns []introspect.Column) (RowIterator, error) {
	t := s.src.tables[table]
	if t.gate != nil {
		select {
		case <-t.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &sliceRows{rows: t.rows, err: t.rowsErr, pos: -1}, nil
}

func (s *fakeSession) Close() error {
	if s.closed {
		return errors.New("session closed twice")
	}
	s.closed = true
	s.src.mu.Lock()
	s.src.open--
	s.src.mu.Unlock()
	return nil
}

type styledSession struct {
	*fakeSession
	style BinaryStyle
}

func (s *styledSession) BinaryStyle() BinaryStyle { return s.style }

type sliceRows struct {
	rows   [][]any
	err    error
	pos    int
	closed bool
}

func (r *sliceRows) Next() bool {
	if r.pos+1 >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *sliceRows) Values() ([]any, error) { return r.rows[r.pos], nil }

func (r *sliceRows) Err() error { return r.err }

func (r *sliceRows) Close() error {
	r.closed = true
	return nil
}

// failingSink accepts limit chunks and then fails.
type failingSink struct {
	BufferSink
	limit int
}

func (s *failingSink) Emit(chunk string) error {
	if s.limit == 0 {
		return errors.New("disk full")
	}
	s.limit--
	return s.BufferSink.Emit(chunk)
}

func usersTable() *fakeTable {
	return &fakeTable{
		columns: []introspect.Column{
			{Name: "id", Type: "int"},
			{Name: "name", Type: "varchar", Nullable: true, MaxLength: length(50)},
		},
		rows: [][]any{
			{int64(1), "Ann"},
			{int64(2), "O'Brien"},
			{int64(3), "Cy"},
		},
	}
}

func numbersTable(n int) *fakeTable {
	t := &fakeTable{columns: []introspect.Column{{Name: "n", Type: "bigint"}}}
	for i := range n {
		t.rows = append(t.rows, []any{int64(i)})
	}
	return t
}

package dump

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/panjf2000/ants/v2"

	"sqldump/internal/introspect"
	"sqldump/internal/logger"
)

// Dumper sequences the per-table dump: drop, create, indexes, data.
type Dumper struct {
	Source  Source
	Options Options

	// Workers > 1 dumps that many tables at once, each on its own session.
	// Output order is the table order either way. A finished table stays
	// buffered until every table before it is written, and the buffer counts
	// against the Workers limit.
	Workers int
	// Exclude holds glob patterns of table names to leave out.
	Exclude []string
	// SortTables sorts a listed table set by name. Explicit lists keep their order.
	SortTables bool
}

// Stats summarises a dump.
type Stats struct {
	Tables     int
	Statements int
	Rows       int64
	Bytes      int64
}

func (s *Stats) add(o Stats) {
	s.Tables += o.Tables
	s.Statements += o.Statements
	s.Rows += o.Rows
	s.Bytes += o.Bytes
}

// DumpDatabase writes the dump of tables to sink. An empty list dumps every
// base table. Connectivity, schema and sink failures stop the dump at once;
// a formatting failure stops only its table's data and is reported in the
// joined error once the remaining tables are done. Any error means the
// output is not a valid dump.
func (d *Dumper) DumpDatabase(ctx context.Context, tables []string, sink Sink) (Stats, error) {
	for _, p := range d.Exclude {
		if !doublestar.ValidatePattern(p) {
			return Stats{}, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}

	session, err := d.Source.Session(ctx)
	if err != nil {
		return Stats{}, classify("", err)
	}
	defer session.Close()

	tables, err = d.resolveTables(ctx, session, tables)
	if err != nil {
		return Stats{}, err
	}
	logger.Info("dumping %d tables", len(tables))

	var stats Stats
	if d.Workers > 1 && len(tables) > 1 {
		stats, err = d.dumpParallel(ctx, tables, sink)
	} else {
		stats, err = d.dumpSequential(ctx, session, tables, sink)
	}
	if err == nil {
		logger.Info("dumped %d tables: %s rows in %d statements, %s",
			stats.Tables, humanize.Comma(stats.Rows), stats.Statements, humanize.Bytes(uint64(stats.Bytes)))
	}
	return stats, err
}

func (d *Dumper) resolveTables(ctx context.Context, s CatalogSource, tables []string) ([]string, error) {
	listed := len(tables) == 0
	if listed {
		var err error
		if tables, err = s.ListBaseTables(ctx); err != nil {
			return nil, classify("", fmt.Errorf("list tables: %w", err))
		}
	}

	out := make([]string, 0, len(tables))
	for _, t := range tables {
		if d.excluded(t) {
			logger.Debug("excluding table %s", t)
			continue
		}
		out = append(out, t)
	}
	if listed && d.SortTables {
		slices.Sort(out)
	}
	return out, nil
}

func (d *Dumper) excluded(table string) bool {
	for _, p := range d.Exclude {
		if ok, _ := doublestar.Match(p, table); ok {
			return true
		}
	}
	return false
}

func (d *Dumper) dumpSequential(ctx context.Context, s Session, tables []string, sink Sink) (Stats, error) {
	var stats Stats
	var failed []error
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		res, err := d.dumpTable(ctx, s, t, sink)
		stats.add(res)
		if err != nil {
			if isFatal(err) {
				return stats, err
			}
			logger.Error("data of table %s is incomplete: %v", t, err)
			failed = append(failed, err)
		}
	}
	return stats, errors.Join(failed...)
}

type tableTask struct {
	done chan struct{}
	buf  BufferSink
	res  Stats
	err  error
}

func (d *Dumper) dumpParallel(ctx context.Context, tables []string, sink Sink) (Stats, error) {
	pool, err := ants.NewPool(d.Workers)
	if err != nil {
		return Stats{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make([]*tableTask, len(tables))
	for i := range tasks {
		tasks[i] = &tableTask{done: make(chan struct{})}
	}

	// a slot is held from submission until the table is flushed, so at most
	// Workers tables are running or buffered at any time
	slots := make(chan struct{}, d.Workers)

	go func() {
		for i, t := range tables {
			task := tasks[i]
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				for _, rest := range tasks[i:] {
					rest.err = ctx.Err()
					close(rest.done)
				}
				return
			}
			err := pool.Submit(func() {
				defer close(task.done)
				if err := ctx.Err(); err != nil {
					task.err = err
					return
				}
				s, err := d.Source.Session(ctx)
				if err != nil {
					task.err = classify(t, err)
					return
				}
				defer s.Close()
				task.res, task.err = d.dumpTable(ctx, s, t, &task.buf)
			})
			if err != nil {
				task.err = fmt.Errorf("submit table %s: %w", t, err)
				close(task.done)
			}
		}
	}()

	// abort cancels outstanding work and waits for it so the pool can be released.
	abort := func(from int) {
		cancel()
		for _, task := range tasks[from:] {
			<-task.done
		}
	}

	var stats Stats
	var failed []error
	for i, task := range tasks {
		<-task.done
		if task.buf.Len() > 0 {
			if err := sink.Emit(task.buf.String()); err != nil {
				abort(i + 1)
				return stats, sinkError(tables[i], err)
			}
		}
		stats.add(task.res)
		if task.err != nil {
			if isFatal(task.err) {
				abort(i + 1)
				return stats, task.err
			}
			logger.Error("data of table %s is incomplete: %v", tables[i], task.err)
			failed = append(failed, task.err)
		}
		task.buf = BufferSink{}
		<-slots
	}
	return stats, errors.Join(failed...)
}

// dumpTable emits the statements of one table. Columns are always described,
// before anything is emitted, so a missing table produces no output.
func (d *Dumper) dumpTable(ctx context.Context, s Session, table string, sink Sink) (Stats, error) {
	res := Stats{Tables: 1}
	emit := func(chunk string) error {
		if err := sink.Emit(chunk); err != nil {
			return sinkError(table, err)
		}
		res.Statements++
		res.Bytes += int64(len(chunk))
		return nil
	}

	logger.Debug("dumping table %s", table)
	columns, err := s.DescribeColumns(ctx, table)
	if err != nil {
		return res, classify(table, fmt.Errorf("describe columns: %w", err))
	}
	if len(columns) == 0 {
		return res, NewError(SchemaResolutionError, table, errors.New("table does not exist or has no columns"))
	}
	t := introspect.Table{Name: table, Columns: columns}

	if d.Options.AddDropTable {
		if err := emit(DropTable(t.Name)); err != nil {
			return res, err
		}
	}
	if d.Options.IncludeCreateTable {
		if err := emit(CreateTable(t.Name, t.Columns)); err != nil {
			return res, err
		}
	}
	if d.Options.IncludeIndexes {
		if t.Indexes, err = s.DescribeIndexes(ctx, table); err != nil {
			return res, classify(table, fmt.Errorf("describe indexes: %w", err))
		}
		for _, stmt := range Indexes(t.Name, t.Indexes) {
			if err := emit(stmt); err != nil {
				return res, err
			}
		}
	}
	if !d.Options.IncludeData {
		return res, nil
	}

	rows, err := s.Rows(ctx, table, t.Columns)
	if err != nil {
		return res, classify(table, fmt.Errorf("select rows: %w", err))
	}
	defer rows.Close()

	var binary BinaryStyle
	if bs, ok := s.(BinaryStyler); ok {
		binary = bs.BinaryStyle()
	}
	counted := &countingRows{RowIterator: rows}
	for stmt, err := range Serialize(ctx, t.Name, t.Columns, counted, d.Options.batchSize(), binary) {
		if err != nil {
			return res, err
		}
		if err := emit(stmt); err != nil {
			return res, err
		}
	}
	res.Rows = counted.n
	logger.Debug("table %s: %s rows", table, humanize.Comma(res.Rows))
	return res, nil
}

func sinkError(table string, err error) error {
	if IsKind(err, SinkWriteError) {
		return err
	}
	return NewError(SinkWriteError, table, err)
}

type countingRows struct {
	RowIterator
	n int64
}

func (c *countingRows) Next() bool {
	if c.RowIterator.Next() {
		c.n++
		return true
	}
	return false
}

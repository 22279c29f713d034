package dump

// DefaultBatchSize is the number of rows per INSERT statement.
const DefaultBatchSize = 1000

// Options selects which statements are emitted for every table.
type Options struct {
	IncludeData        bool
	IncludeCreateTable bool
	IncludeIndexes     bool
	AddDropTable       bool
	BatchSize          int
}

// DefaultOptions emits everything except DROP TABLE, in batches of 1000 rows.
func DefaultOptions() Options {
	return Options{
		IncludeData:        true,
		IncludeCreateTable: true,
		IncludeIndexes:     true,
		BatchSize:          DefaultBatchSize,
	}
}

func (o Options) batchSize() int {
	if o.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return o.BatchSize
}

package dump

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"sqldump/internal/introspect"
)

// Serialize renders the rows of one table as batched INSERT statements.
// The sequence yields one complete statement per batch of at most batchSize
// rows, and nothing for an empty table. On failure the partial batch is
// dropped and the error is yielded last. The caller owns rows. Binary
// values are rendered with binary, HexBinary when nil.
func Serialize(ctx context.Context, table string, columns []introspect.Column, rows RowIterator, batchSize int, binary BinaryStyle) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if batchSize <= 0 {
			batchSize = DefaultBatchSize
		}
		if binary == nil {
			binary = HexBinary
		}
		kinds := make([]Kind, len(columns))
		for i, c := range columns {
			kinds[i] = KindOf(c.Type)
		}
		header := "INSERT INTO " + table + " (" + strings.Join(introspect.ColumnNames(columns), ", ") + ") VALUES "

		var sb strings.Builder
		inBatch := 0
		for rows.Next() {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}
			values, err := rows.Values()
			if err != nil {
				yield("", classify(table, err))
				return
			}
			if len(values) != len(columns) {
				yield("", NewError(SchemaResolutionError, table,
					fmt.Errorf("row has %d values for %d columns", len(values), len(columns))))
				return
			}

			if inBatch == 0 {
				sb.Reset()
				sb.WriteString(header)
			} else {
				sb.WriteString(", ")
			}
			if err := writeTuple(&sb, values, kinds, columns, binary); err != nil {
				yield("", NewError(FormattingError, table, err))
				return
			}
			inBatch++

			if inBatch == batchSize {
				sb.WriteString(";\n")
				inBatch = 0
				if !yield(sb.String(), nil) {
					return
				}
			}
		}
		if err := rows.Err(); err != nil {
			yield("", classify(table, err))
			return
		}
		if inBatch > 0 {
			sb.WriteString(";\n")
			yield(sb.String(), nil)
		}
	}
}

func writeTuple(sb *strings.Builder, values []any, kinds []Kind, columns []introspect.Column, binary BinaryStyle) error {
	sb.WriteByte('(')
	for i, v := range values {
		lit, err := formatLiteral(v, kinds[i], binary)
		if err != nil {
			return fmt.Errorf("column %s: %w", columns[i].Name, err)
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(lit)
	}
	sb.WriteByte(')')
	return nil
}

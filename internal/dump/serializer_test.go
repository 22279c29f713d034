package dump

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqldump/internal/introspect"
)

func collect(t *testing.T, seq func(func(string, error) bool)) ([]string, error) {
	t.Helper()
	var out []string
	for stmt, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

func TestSerialize(t *testing.T) {
	users := usersTable()
	rows := &sliceRows{rows: users.rows, pos: -1}

	got, err := collect(t, Serialize(context.Background(), "Users", users.columns, rows, 2, nil))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"INSERT INTO Users (id, name) VALUES (1,'Ann'), (2,'O''Brien');\n",
		"INSERT INTO Users (id, name) VALUES (3,'Cy');\n",
	}, got)
}

func TestSerializeStatementCount(t *testing.T) {
	var tests = []struct {
		rows, batch, want int
	}{
		{0, 1000, 0},
		{1, 1000, 1},
		{1000, 1000, 1},
		{1001, 1000, 2},
		{7, 3, 3},
		{6, 3, 2},
		{5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows by %d", tt.rows, tt.batch), func(t *testing.T) {
			tbl := numbersTable(tt.rows)
			got, err := collect(t, Serialize(context.Background(), "n", tbl.columns, &sliceRows{rows: tbl.rows, pos: -1}, tt.batch, nil))
			require.NoError(t, err)
			assert.Len(t, got, tt.want)

			tuples := 0
			for _, stmt := range got {
				assert.True(t, strings.HasPrefix(stmt, "INSERT INTO n (n) VALUES ("), stmt)
				assert.True(t, strings.HasSuffix(stmt, ");\n"), stmt)
				n := strings.Count(stmt, "), (") + 1
				assert.LessOrEqual(t, n, tt.batch)
				tuples += n
			}
			if tt.rows > 0 {
				assert.Equal(t, tt.rows, tuples)
			}
		})
	}
}

func TestSerializeNonPositiveBatchSize(t *testing.T) {
	tbl := numbersTable(DefaultBatchSize + 1)
	got, err := collect(t, Serialize(context.Background(), "n", tbl.columns, &sliceRows{rows: tbl.rows, pos: -1}, 0, nil))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSerializeNulls(t *testing.T) {
	cols := []introspect.Column{{Name: "a", Type: "int", Nullable: true}, {Name: "b", Type: "varchar", Nullable: true}}
	rows := &sliceRows{rows: [][]any{{nil, nil}}, pos: -1}

	got, err := collect(t, Serialize(context.Background(), "t", cols, rows, 10, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"INSERT INTO t (a, b) VALUES (NULL,NULL);\n"}, got)
}

func TestSerializeFormattingErrorDropsPartialBatch(t *testing.T) {
	cols := []introspect.Column{{Name: "v", Type: "varchar"}}
	rows := &sliceRows{rows: [][]any{{"a"}, {"b"}, {"c"}, {struct{}{}}, {"e"}}, pos: -1}

	got, err := collect(t, Serialize(context.Background(), "t", cols, rows, 2, nil))

	assert.Equal(t, []string{"INSERT INTO t (v) VALUES ('a'), ('b');\n"}, got)
	assert.True(t, IsKind(err, FormattingError), "%v", err)
	assert.True(t, errors.Is(err, ErrUnsupportedValue))
	assert.Contains(t, err.Error(), "column v")
}

func TestSerializeRowWidthMismatch(t *testing.T) {
	cols := []introspect.Column{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}
	rows := &sliceRows{rows: [][]any{{int64(1)}}, pos: -1}

	_, err := collect(t, Serialize(context.Background(), "t", cols, rows, 10, nil))
	assert.True(t, IsKind(err, SchemaResolutionError), "%v", err)
}

func TestSerializeIterationError(t *testing.T) {
	tbl := numbersTable(3)
	rows := &sliceRows{rows: tbl.rows, err: errors.New("connection reset"), pos: -1}

	got, err := collect(t, Serialize(context.Background(), "n", tbl.columns, rows, 2, nil))

	assert.Len(t, got, 1, "the complete first batch is kept, the open one dropped")
	assert.True(t, IsKind(err, ConnectivityError), "%v", err)
}

func TestSerializeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tbl := numbersTable(3)

	got, err := collect(t, Serialize(ctx, "n", tbl.columns, &sliceRows{rows: tbl.rows, pos: -1}, 2, nil))

	assert.Empty(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSerializeStopsWhenConsumerStops(t *testing.T) {
	tbl := numbersTable(10)
	rows := &sliceRows{rows: tbl.rows, pos: -1}

	for range Serialize(context.Background(), "n", tbl.columns, rows, 2, nil) {
		break
	}
	assert.Equal(t, 1, rows.pos, "no rows are read past the first batch")
}

package dump_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqldump/internal/dump"
	"sqldump/internal/dump/mocks"
	"sqldump/internal/introspect"
)

var idColumn = []introspect.Column{{Name: "id", Type: "int"}}

func TestDumperSessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Session(gomock.Any()).Return(nil, errors.New("login timeout"))

	var sink dump.BufferSink
	_, err := (&dump.Dumper{Source: src, Options: dump.DefaultOptions()}).DumpDatabase(context.Background(), nil, &sink)

	assert.True(t, dump.IsKind(err, dump.ConnectivityError), "%v", err)
	assert.Zero(t, sink.Len())
}

func TestDumperRowsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	sess := mocks.NewMockSession(ctrl)
	rows := mocks.NewMockRowIterator(ctrl)

	src.EXPECT().Session(gomock.Any()).Return(sess, nil)
	sess.EXPECT().DescribeColumns(gomock.Any(), "T").Return(idColumn, nil)
	sess.EXPECT().Rows(gomock.Any(), "T", idColumn).Return(rows, nil)
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Values().Return([]interface{}{int64(1)}, nil),
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Values().Return(nil, errors.New("connection reset by peer")),
		rows.EXPECT().Close().Return(nil),
	)
	sess.EXPECT().Close().Return(nil)

	var sink dump.BufferSink
	stats, err := (&dump.Dumper{Source: src, Options: dump.Options{IncludeData: true}}).
		DumpDatabase(context.Background(), []string{"T"}, &sink)

	require.Error(t, err)
	assert.True(t, dump.IsKind(err, dump.ConnectivityError), "%v", err)
	assert.Zero(t, sink.Len(), "the open batch is never emitted")
	assert.Equal(t, 1, stats.Tables)
}

func TestDumperIndexFailureAfterCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	sess := mocks.NewMockSession(ctrl)

	src.EXPECT().Session(gomock.Any()).Return(sess, nil)
	sess.EXPECT().ListBaseTables(gomock.Any()).Return([]string{"T", "U"}, nil)
	sess.EXPECT().DescribeColumns(gomock.Any(), "T").Return(idColumn, nil)
	sess.EXPECT().DescribeIndexes(gomock.Any(), "T").Return(nil, errors.New("permission denied on sys.indexes"))
	sess.EXPECT().Close().Return(nil)

	var sink dump.BufferSink
	_, err := (&dump.Dumper{Source: src, Options: dump.DefaultOptions()}).DumpDatabase(context.Background(), nil, &sink)

	assert.True(t, dump.IsKind(err, dump.ConnectivityError), "%v", err)
	assert.Contains(t, err.Error(), "describe indexes")
	assert.Equal(t, "CREATE TABLE T (\n id int NOT NULL\n);\n", sink.String())
}

func TestDumperParallelSessionPerTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSource(ctrl)
	listing := mocks.NewMockSession(ctrl)
	src.EXPECT().Session(gomock.Any()).Return(listing, nil)
	listing.EXPECT().Close().Return(nil)

	for range 2 {
		sess := mocks.NewMockSession(ctrl)
		src.EXPECT().Session(gomock.Any()).Return(sess, nil)
		sess.EXPECT().DescribeColumns(gomock.Any(), gomock.Any()).Return(idColumn, nil)
		sess.EXPECT().Close().Return(nil)
	}

	var sink dump.BufferSink
	_, err := (&dump.Dumper{Source: src, Options: dump.Options{AddDropTable: true}, Workers: 2}).
		DumpDatabase(context.Background(), []string{"A", "B"}, &sink)

	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE IF EXISTS A;\nDROP TABLE IF EXISTS B;\n", sink.String())
}

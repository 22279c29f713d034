package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "DROP TABLE IF EXISTS Users;\nINSERT INTO Users (id) VALUES (1);\n"

func TestCompressionFor(t *testing.T) {
	var tests = []struct {
		compress string
		path     string
		want     string
	}{
		{"", "dump.sql", None},
		{"", "dump.sql.gz", Gzip},
		{"", "dump.SQL.ZST", Zstd},
		{"", "dump.sql.lz4", LZ4},
		{"GZIP", "dump.sql", Gzip},
		{"none", "dump.sql.gz", None},
		{"", "", None},
	}

	for _, tt := range tests {
		t.Run(tt.compress+"/"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressionFor(tt.compress, tt.path))
		})
	}
}

func TestOpenStdout(t *testing.T) {
	var buf bytes.Buffer
	stubs := gostub.Stub(&stdout, &buf)
	defer stubs.Reset()

	w, err := Open("-", "")
	require.NoError(t, err)
	_, err = io.WriteString(w, payload)
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "output is buffered until close")
	require.NoError(t, w.Close())

	assert.Equal(t, payload, buf.String())
}

func TestOpenFile(t *testing.T) {
	var tests = []struct {
		name     string
		file     string
		compress string
		decode   func(io.Reader) (io.Reader, error)
	}{
		{"plain", "dump.sql", "", func(r io.Reader) (io.Reader, error) { return r, nil }},
		{"gzip by extension", "dump.sql.gz", "", func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) }},
		{"zstd explicit", "dump.out", Zstd, func(r io.Reader) (io.Reader, error) { return zstd.NewReader(r) }},
		{"lz4 by extension", "dump.sql.lz4", "", func(r io.Reader) (io.Reader, error) { return lz4.NewReader(r), nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			w, err := Open(path, tt.compress)
			require.NoError(t, err)
			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()
			r, err := tt.decode(f)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, string(got))
		})
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "dump.sql"), "rar")
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing", "dump.sql"), "")
	assert.Error(t, err)
}

package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	None = "none"
	Gzip = "gzip"
	Zstd = "zstd"
	LZ4  = "lz4"
)

const bufferSize = 256 * 1024

var stdout io.Writer = os.Stdout

// CompressionFor returns the explicit compression, or the one implied by the
// file extension when none is given.
func CompressionFor(compress, path string) string {
	if compress != "" {
		return strings.ToLower(compress)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Open returns a buffered writer to path, or to stdout for "" and "-",
// wrapped in the requested compression. Close flushes every layer and
// closes the file; it never closes stdout.
func Open(path, compress string) (io.WriteCloser, error) {
	toStdout := path == "" || path == "-"
	kind := CompressionFor(compress, path)
	switch kind {
	case None, Gzip, Zstd, LZ4:
	default:
		return nil, fmt.Errorf("unsupported compression: %s", compress)
	}

	var base io.Writer
	var file *os.File
	if toStdout {
		base = stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		base, file = f, f
	}

	var comp io.WriteCloser
	switch kind {
	case Gzip:
		comp = gzip.NewWriter(base)
	case Zstd:
		enc, err := zstd.NewWriter(base)
		if err != nil {
			closeFile(file)
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		comp = enc
	case LZ4:
		comp = lz4.NewWriter(base)
	}

	w := &writer{file: file, comp: comp}
	if comp != nil {
		w.buf = bufio.NewWriterSize(comp, bufferSize)
	} else {
		w.buf = bufio.NewWriterSize(base, bufferSize)
	}
	return w, nil
}

func closeFile(f *os.File) {
	if f != nil {
		f.Close()
	}
}

type writer struct {
	buf  *bufio.Writer
	comp io.WriteCloser
	file *os.File
}

func (w *writer) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *writer) WriteString(s string) (int, error) { return w.buf.WriteString(s) }

func (w *writer) Close() error {
	err := w.buf.Flush()
	if w.comp != nil {
		err = errors.Join(err, w.comp.Close())
	}
	if w.file != nil {
		err = errors.Join(err, w.file.Close())
	}
	return err
}

package dump

import (
	"io"
	"strings"
)

// Sink accepts rendered statement text in emission order.
type Sink interface {
	Emit(chunk string) error
}

// WriterSink writes chunks to an io.Writer and counts the bytes written.
type WriterSink struct {
	w io.Writer
	n int64
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes chunk. Failures are SinkWriteErrors.
func (s *WriterSink) Emit(chunk string) error {
	n, err := io.WriteString(s.w, chunk)
	s.n += int64(n)
	return NewError(SinkWriteError, "", err)
}

// Written returns the number of bytes accepted by the writer.
func (s *WriterSink) Written() int64 { return s.n }

// BufferSink keeps everything in memory.
type BufferSink struct {
	sb strings.Builder
}

func (s *BufferSink) Emit(chunk string) error {
	s.sb.WriteString(chunk)
	return nil
}

func (s *BufferSink) String() string { return s.sb.String() }

func (s *BufferSink) Len() int { return s.sb.Len() }

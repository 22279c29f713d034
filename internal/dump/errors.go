package dump

import (
	"errors"
	"fmt"
)

// ErrorKind classifies dump failures by how far they reach.
type ErrorKind int

const (
	// ConnectivityError means the source could not be reached or queried.
	ConnectivityError ErrorKind = iota
	// SchemaResolutionError means table metadata is missing or inconsistent.
	SchemaResolutionError
	// FormattingError means a value could not be rendered as a literal.
	FormattingError
	// SinkWriteError means the destination rejected output.
	SinkWriteError
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectivityError:
		return "connectivity"
	case SchemaResolutionError:
		return "schema resolution"
	case FormattingError:
		return "formatting"
	case SinkWriteError:
		return "sink write"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a classified dump failure.
type Error struct {
	Kind  ErrorKind
	Table string // empty when not tied to one table
	Err   error
}

// NewError wraps err with a kind and table. A nil err yields nil.
func NewError(kind ErrorKind, table string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Table: table, Err: err}
}

func (e *Error) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error on table %s: %v", e.Kind, e.Table, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fatal reports whether the failure aborts the whole dump. Only formatting
// failures are confined to the table that raised them.
func (e *Error) Fatal() bool {
	return e.Kind != FormattingError
}

// IsKind reports whether err carries a dump Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// classify tags an untyped source error as connectivity; typed errors pass
// through unchanged.
func classify(table string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: ConnectivityError, Table: table, Err: err}
}

// isFatal treats anything that is not a classified formatting failure as fatal.
func isFatal(err error) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Fatal()
	}
	return true
}

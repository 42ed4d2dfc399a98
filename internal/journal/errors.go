// ABOUTME: Error taxonomy for journal storage and retrieval
// ABOUTME: Sentinel errors matched with errors.Is after wrapping
package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrHomeDirectoryUnavailable means no default journal path can be built.
	ErrHomeDirectoryUnavailable = errors.New("home directory unavailable")
	// ErrFileOpen covers open, create, write and close failures on the journal file.
	ErrFileOpen = errors.New("cannot open journal file")
	// ErrSerialization means an entry could not be encoded.
	ErrSerialization = errors.New("cannot serialize journal entry")
	// ErrFileNotFound means a read was attempted before anything was written.
	ErrFileNotFound = errors.New("journal file not found")
	// ErrLineRead means a line could not be read as text.
	ErrLineRead = errors.New("cannot read line from journal")
	// ErrDeserialization means a line is not a valid encoded entry.
	ErrDeserialization = errors.New("cannot deserialize journal entry")
	// ErrInvalidArguments is returned for malformed command line input.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// LineError locates a bad line in the journal file. Forward scans know the
// line number; the tail scanner only knows the byte offset.
type LineError struct {
	Line   int
	Offset int64
	Err    error
}

func (e *LineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("byte offset %d: %v", e.Offset, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

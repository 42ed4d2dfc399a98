// ABOUTME: Journal handle bound to one append-only JSON lines file
// ABOUTME: Configured with functional options, holds no open file between calls
package journal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

const defaultChunkSize = 64 * 1024

// Journal reads and appends entries in a single file. Each operation opens
// and closes the file; nothing is cached between calls.
type Journal struct {
	path        string
	skipCorrupt bool
	chunkSize   int
	now         func() time.Time
	logger      *log.Logger
}

// Option configures a Journal.
type Option func(*Journal)

// WithSkipCorrupt makes reads skip malformed lines with a warning instead of failing.
func WithSkipCorrupt(enabled bool) Option {
	return func(j *Journal) {
		j.skipCorrupt = enabled
	}
}

// WithClock overrides the time source used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		j.now = now
	}
}

// WithLogger sets the logger for debug and warning output.
func WithLogger(logger *log.Logger) Option {
	return func(j *Journal) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// WithChunkSize sets the block size used when scanning backwards.
func WithChunkSize(size int) Option {
	return func(j *Journal) {
		if size > 0 {
			j.chunkSize = size
		}
	}
}

// New returns a Journal for the file at path. The file is not touched.
func New(path string, opts ...Option) *Journal {
	j := &Journal{
		path:      path,
		chunkSize: defaultChunkSize,
		now:       time.Now,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Path returns the journal file location.
func (j *Journal) Path() string {
	return j.path
}

// SkipCorrupt reports whether malformed lines are skipped on read.
func (j *Journal) SkipCorrupt() bool {
	return j.skipCorrupt
}

// openForRead opens the journal file, mapping a missing file to ErrFileNotFound.
func (j *Journal) openForRead() (*os.File, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, j.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileOpen, j.path, err)
	}
	return f, nil
}

// badLine either logs and swallows a line error (skip mode) or returns it.
func (j *Journal) badLine(lerr *LineError) error {
	if !j.skipCorrupt {
		return lerr
	}
	if lerr.Line > 0 {
		j.logger.Warn("skipping corrupt journal line", "path", j.path, "line", lerr.Line, "err", lerr.Err)
	} else {
		j.logger.Warn("skipping corrupt journal line", "path", j.path, "offset", lerr.Offset, "err", lerr.Err)
	}
	return nil
}

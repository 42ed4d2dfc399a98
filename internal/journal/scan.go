// ABOUTME: Forward scans over the whole journal for search and verification
// ABOUTME: Reports bad lines by line number; honors skip-corrupt mode
package journal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// scanForward calls fn with each line of r and its 1-based line number.
func scanForward(ctx context.Context, r io.Reader, fn func(line []byte, lineNo int) error) error {
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return &LineError{Line: lineNo, Err: fmt.Errorf("%w: %w", ErrLineRead, err)}
		}
		atEOF := err != nil
		if atEOF && len(line) == 0 {
			return nil
		}

		if ferr := fn(bytes.TrimSuffix(line, []byte("\n")), lineNo); ferr != nil {
			return ferr
		}
		if atEOF {
			return nil
		}
	}
}

// Each calls fn for every entry in file order.
func (j *Journal) Each(ctx context.Context, fn func(Entry) error) error {
	f, err := j.openForRead()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	err = scanForward(ctx, f, func(line []byte, lineNo int) error {
		entry, err := Decode(line)
		if err != nil {
			return j.badLine(&LineError{Line: lineNo, Err: err})
		}
		return fn(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", j.path, err)
	}
	return nil
}

// Filter selects entries for Search. Zero fields match everything.
type Filter struct {
	Text  string
	Since *time.Time
	Until *time.Time
}

// Matches reports whether entry satisfies the filter. Text matching is a
// case-insensitive substring test; the date range is inclusive.
func (f *Filter) Matches(entry Entry) bool {
	if f == nil {
		return true
	}
	if f.Text != "" && !strings.Contains(strings.ToLower(entry.Entry), strings.ToLower(f.Text)) {
		return false
	}
	if f.Since != nil && entry.Timestamp.Before(*f.Since) {
		return false
	}
	if f.Until != nil && entry.Timestamp.After(*f.Until) {
		return false
	}
	return true
}

// Search returns matching entries in file order, keeping only the last limit
// matches when limit is positive.
func (j *Journal) Search(ctx context.Context, filter *Filter, limit int) ([]Entry, error) {
	matches := []Entry{}
	err := j.Each(ctx, func(entry Entry) error {
		if !filter.Matches(entry) {
			return nil
		}
		matches = append(matches, entry)
		if limit > 0 && len(matches) > limit {
			matches = matches[1:]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Report summarizes a full verification pass.
type Report struct {
	Lines    int
	Entries  int
	First    time.Time
	Last     time.Time
	Problems []LineError
	// OutOfOrder counts entries whose timestamp is earlier than the previous one.
	OutOfOrder int
}

// OK reports whether every line decoded.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Verify decodes every line and collects problems instead of stopping at the
// first one. Only open and I/O failures are returned as errors.
func (j *Journal) Verify(ctx context.Context) (*Report, error) {
	f, err := j.openForRead()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	report := &Report{}
	err = scanForward(ctx, f, func(line []byte, lineNo int) error {
		report.Lines = lineNo
		entry, err := Decode(line)
		if err != nil {
			report.Problems = append(report.Problems, LineError{Line: lineNo, Err: err})
			return nil
		}
		if report.Entries == 0 {
			report.First = entry.Timestamp
		} else if entry.Timestamp.Before(report.Last) {
			report.OutOfOrder++
		}
		report.Last = entry.Timestamp
		report.Entries++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify %s: %w", j.path, err)
	}
	return report, nil
}

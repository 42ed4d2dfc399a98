// ABOUTME: Entry reader returning the most recent N entries
// ABOUTME: Memory tracks N, not file size: a ring buffer when strict, a backward block scan when skipping
package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// lineFunc receives one line (without its newline) and the byte offset where
// it starts. Returning more=false stops the scan.
type lineFunc func(line []byte, offset int64) (more bool, err error)

// Last returns up to n of the most recently appended entries, oldest first.
// The file must exist even when n is zero. By default every line is decoded
// and any malformed line fails the read; in skip mode only the tail is read.
func (j *Journal) Last(ctx context.Context, n int) ([]Entry, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArguments, n)
	}

	f, err := j.openForRead()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var entries []Entry
	if j.skipCorrupt {
		entries, err = j.lastTail(ctx, f, n)
	} else {
		entries, err = lastStrict(ctx, f, n)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", j.path, err)
	}

	j.logger.Debug("read last entries", "path", j.path, "requested", n, "returned", len(entries), "skip_corrupt", j.skipCorrupt)
	return entries, nil
}

// lastStrict decodes every line front to back and keeps the last n entries
// in a ring that grows to at most n.
func lastStrict(ctx context.Context, r io.Reader, n int) ([]Entry, error) {
	var (
		ring []Entry
		next int // oldest slot once the ring is full
	)

	err := scanForward(ctx, r, func(line []byte, lineNo int) error {
		entry, err := Decode(line)
		if err != nil {
			return &LineError{Line: lineNo, Err: err}
		}

		switch {
		case n == 0:
		case len(ring) < n:
			ring = append(ring, entry)
		default:
			ring[next] = entry
			next = (next + 1) % n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(ring))
	entries = append(entries, ring[next:]...)
	return append(entries, ring[:next]...), nil
}

// lastTail scans backwards from the end of f and stops after n entries.
// Malformed lines are logged and skipped.
func (j *Journal) lastTail(ctx context.Context, f *os.File, n int) ([]Entry, error) {
	entries := []Entry{}
	if n == 0 {
		return entries, nil
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat: %w", ErrLineRead, err)
	}

	err = scanBackward(f, info.Size(), j.chunkSize, func(line []byte, offset int64) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		entry, err := Decode(line)
		if err != nil {
			return true, j.badLine(&LineError{Offset: offset, Err: err})
		}
		entries = append(entries, entry)
		return len(entries) < n, nil
	})
	if err != nil {
		return nil, err
	}

	slices.Reverse(entries)
	return entries, nil
}

// scanBackward calls fn for each line of r from last to first. An empty
// segment after the final newline is not a line; every other segment is,
// including empty ones between two newlines.
func scanBackward(r io.ReaderAt, size int64, chunkSize int, fn lineFunc) error {
	if size == 0 {
		return nil
	}

	var (
		pos   = size
		carry []byte // tail bytes of the line currently being assembled
		final = true // next boundary closes the last segment of the file
		buf   = make([]byte, chunkSize)
	)

	for pos > 0 {
		readSize := min(int64(chunkSize), pos)
		pos -= readSize
		chunk := buf[:readSize]
		if _, err := r.ReadAt(chunk, pos); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", ErrLineRead, err)
		}

		end := len(chunk)
		for i := len(chunk) - 1; i >= 0; i-- {
			if chunk[i] != '\n' {
				continue
			}
			line := joinLine(chunk[i+1:end], carry)
			carry = nil
			end = i

			if final {
				final = false
				if len(line) == 0 {
					continue
				}
			}

			more, err := fn(line, pos+int64(i)+1)
			if err != nil || !more {
				return err
			}
		}
		carry = joinLine(chunk[:end], carry)
	}

	_, err := fn(carry, 0)
	return err
}

// joinLine copies head+tail into a fresh slice so chunk buffers can be reused.
func joinLine(head, tail []byte) []byte {
	out := make([]byte, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

// ABOUTME: Entry writer appending one JSON line per call
// ABOUTME: Creates the journal file on first write, never its parent directory
package journal

import (
	"fmt"
	"os"
)

// Append stamps text with the current UTC time and appends it as one line.
// The line and its newline go out in a single write.
func (j *Journal) Append(text string) (Entry, error) {
	entry := NewEntry(text, j.now())

	data, err := Encode(entry)
	if err != nil {
		return Entry{}, err
	}
	data = append(data, '\n')

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %s: %w", ErrFileOpen, j.path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return Entry{}, fmt.Errorf("%w: write %s: %w", ErrFileOpen, j.path, err)
	}
	if err := f.Close(); err != nil {
		return Entry{}, fmt.Errorf("%w: close %s: %w", ErrFileOpen, j.path, err)
	}

	j.logger.Debug("appended entry", "path", j.path, "bytes", len(data))
	return entry, nil
}

// ABOUTME: JournalEntry model and its single-line JSON encoding
// ABOUTME: One entry per line: {"timestamp": RFC 3339 UTC, "entry": text}
package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// DisplayLayout is how timestamps are printed to the user.
const DisplayLayout = "2006-01-02 15:04:05"

// Entry is a single journal record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Entry     string    `json:"entry"`
}

// NewEntry stamps text with the given instant, normalized to UTC.
func NewEntry(text string, at time.Time) Entry {
	return Entry{Timestamp: at.UTC(), Entry: text}
}

// Encode serializes the entry as one JSON line without the trailing newline.
// Text that is not valid UTF-8 is rejected rather than rewritten.
func Encode(e Entry) ([]byte, error) {
	if !utf8.ValidString(e.Entry) {
		return nil, fmt.Errorf("%w: entry text is not valid UTF-8", ErrSerialization)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return data, nil
}

// Decode parses one line of the journal file.
func Decode(line []byte) (Entry, error) {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if !utf8.Valid(line) {
		return Entry{}, fmt.Errorf("%w: invalid UTF-8", ErrLineRead)
	}

	var raw struct {
		Timestamp *time.Time `json:"timestamp"`
		Entry     *string    `json:"entry"`
	}
	if err := json.Unmarshal(line, &raw); err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	if raw.Timestamp == nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrDeserialization, errors.New(`missing field "timestamp"`))
	}
	if raw.Entry == nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrDeserialization, errors.New(`missing field "entry"`))
	}

	return Entry{Timestamp: raw.Timestamp.UTC(), Entry: *raw.Entry}, nil
}

// String renders the entry as "YYYY-MM-DD HH:MM:SS - text".
func (e Entry) String() string {
	return e.Timestamp.UTC().Format(DisplayLayout) + " - " + e.Entry
}

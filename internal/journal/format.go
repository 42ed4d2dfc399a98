// ABOUTME: Output formatting for entries: plain lines, markdown, or JSON lines
// ABOUTME: Plain format colors the timestamp when the terminal supports it
package journal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Format selects how entries are printed.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

var timestampColor = color.New(color.FgCyan)

// ParseFormat validates a format name. Empty means plain.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatJSON, "jsonl":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want plain, markdown or json)", ErrInvalidArguments, s)
	}
}

// WriteEntries prints entries to w in the given format, in slice order.
func WriteEntries(w io.Writer, format Format, entries []Entry) error {
	for _, entry := range entries {
		var content string
		switch format {
		case FormatJSON:
			data, err := Encode(entry)
			if err != nil {
				return err
			}
			content = string(data) + "\n"
		case FormatMarkdown:
			content = formatMarkdown(entry)
		default:
			content = formatPlain(entry)
		}

		if _, err := io.WriteString(w, content); err != nil {
			return err
		}
	}
	return nil
}

func formatPlain(entry Entry) string {
	ts := entry.Timestamp.UTC().Format(DisplayLayout)
	return timestampColor.Sprint(ts) + " - " + entry.Entry + "\n"
}

func formatMarkdown(entry Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n", entry.Timestamp.UTC().Format(DisplayLayout)))
	sb.WriteString("\n")
	sb.WriteString(entry.Entry)
	sb.WriteString("\n\n")

	return sb.String()
}

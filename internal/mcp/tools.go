// ABOUTME: MCP tool implementations for the journal
// ABOUTME: add_entry appends, recent_entries and search_entries read
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/journal/internal/journal"
)

const defaultRecentCount = 10

// EntryData is an entry as exposed to MCP clients.
type EntryData struct {
	Timestamp string `json:"timestamp" jsonschema:"When the entry was written, RFC 3339 UTC"`
	Entry     string `json:"entry" jsonschema:"The entry text"`
}

// AddEntryInput defines the input for add_entry tool.
type AddEntryInput struct {
	Entry string `json:"entry" jsonschema:"The text to append to the journal"`
}

// AddEntryOutput defines the output for add_entry tool.
type AddEntryOutput struct {
	Entry     string `json:"entry" jsonschema:"The logged text"`
	Timestamp string `json:"timestamp" jsonschema:"When the entry was created"`
}

// RecentEntriesInput defines the input for recent_entries tool.
type RecentEntriesInput struct {
	Count int `json:"count,omitempty" jsonschema:"How many of the most recent entries to return (default 10)"`
}

// EntriesOutput is returned by the read tools.
type EntriesOutput struct {
	Entries []EntryData `json:"entries" jsonschema:"Entries, oldest first"`
	Count   int         `json:"count" jsonschema:"Number of entries returned"`
}

// SearchEntriesInput defines the input for search_entries tool.
type SearchEntriesInput struct {
	Text  string `json:"text,omitempty" jsonschema:"Case-insensitive text to look for"`
	Since string `json:"since,omitempty" jsonschema:"Only entries at or after this date"`
	Until string `json:"until,omitempty" jsonschema:"Only entries at or before this date"`
	Limit int    `json:"limit,omitempty" jsonschema:"Keep only the most recent N matches (0 = all)"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_entry",
		Description: "Append a timestamped entry to the user's journal. Use this when the user asks to note, log, or journal something.",
	}, s.handleAddEntry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recent_entries",
		Description: "Return the most recent journal entries, oldest first.",
	}, s.handleRecentEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_entries",
		Description: "Search journal entries by text and date range.",
	}, s.handleSearchEntries)
}

// handleAddEntry implements the add_entry tool.
func (s *Server) handleAddEntry(ctx context.Context, req *mcp.CallToolRequest, input AddEntryInput) (*mcp.CallToolResult, AddEntryOutput, error) {
	entry, err := s.journal.Append(input.Entry)
	if err != nil {
		return nil, AddEntryOutput{}, fmt.Errorf("failed to add entry: %w", err)
	}

	output := AddEntryOutput{
		Entry:     entry.Entry,
		Timestamp: entry.Timestamp.Format(time.RFC3339),
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Entry added at %s", entry.Timestamp.Format(journal.DisplayLayout)),
			},
		},
	}

	return result, output, nil
}

// handleRecentEntries implements the recent_entries tool.
func (s *Server) handleRecentEntries(ctx context.Context, req *mcp.CallToolRequest, input RecentEntriesInput) (*mcp.CallToolResult, EntriesOutput, error) {
	count := input.Count
	if count <= 0 {
		count = defaultRecentCount
	}

	entries, err := s.recent(ctx, count)
	if err != nil {
		return nil, EntriesOutput{}, err
	}

	return entriesResult(entries), toOutput(entries), nil
}

// handleSearchEntries implements the search_entries tool.
func (s *Server) handleSearchEntries(ctx context.Context, req *mcp.CallToolRequest, input SearchEntriesInput) (*mcp.CallToolResult, EntriesOutput, error) {
	filter := &journal.Filter{Text: input.Text}

	if input.Since != "" {
		since, err := dateparse.ParseIn(input.Since, time.UTC)
		if err != nil {
			return nil, EntriesOutput{}, fmt.Errorf("invalid since date: %w", err)
		}
		filter.Since = &since
	}
	if input.Until != "" {
		until, err := dateparse.ParseIn(input.Until, time.UTC)
		if err != nil {
			return nil, EntriesOutput{}, fmt.Errorf("invalid until date: %w", err)
		}
		filter.Until = &until
	}

	entries, err := s.journal.Search(ctx, filter, max(input.Limit, 0))
	if errors.Is(err, journal.ErrFileNotFound) {
		entries, err = []journal.Entry{}, nil
	}
	if err != nil {
		return nil, EntriesOutput{}, fmt.Errorf("failed to search entries: %w", err)
	}

	return entriesResult(entries), toOutput(entries), nil
}

// recent reads the last count entries; a journal that was never written is empty.
func (s *Server) recent(ctx context.Context, count int) ([]journal.Entry, error) {
	entries, err := s.journal.Last(ctx, count)
	if errors.Is(err, journal.ErrFileNotFound) {
		s.logger.Debug("journal file missing, returning no entries", "path", s.journal.Path())
		return []journal.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

func toOutput(entries []journal.Entry) EntriesOutput {
	data := make([]EntryData, len(entries))
	for i, e := range entries {
		data[i] = EntryData{
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Entry:     e.Entry,
		}
	}
	return EntriesOutput{Entries: data, Count: len(data)}
}

func entriesResult(entries []journal.Entry) *mcp.CallToolResult {
	text := "No entries."
	if len(entries) > 0 {
		lines := make([]byte, 0, len(entries)*64)
		for _, e := range entries {
			lines = append(lines, e.String()...)
			lines = append(lines, '\n')
		}
		text = string(lines)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

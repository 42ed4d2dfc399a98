// ABOUTME: Tests for MCP server
// ABOUTME: Validates resource and prompt handlers
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestRecentResource(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()

	if _, _, err := server.handleAddEntry(ctx, nil, AddEntryInput{Entry: "hello"}); err != nil {
		t.Fatalf("handleAddEntry failed: %v", err)
	}

	result, err := server.handleRecent(ctx, nil)
	if err != nil {
		t.Fatalf("handleRecent failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Contents))
	}

	content := result.Contents[0]
	if content.URI != recentURI || content.MIMEType != "application/json" {
		t.Errorf("unexpected content metadata: %s %s", content.URI, content.MIMEType)
	}

	var output EntriesOutput
	if err := json.Unmarshal([]byte(content.Text), &output); err != nil {
		t.Fatalf("resource is not JSON: %v", err)
	}
	if output.Count != 1 || output.Entries[0].Entry != "hello" {
		t.Errorf("unexpected resource body: %+v", output)
	}
}

func TestGettingStartedPrompt(t *testing.T) {
	if !strings.Contains(gettingStarted, "append-only") {
		t.Error("expected prompt to describe the journal as append-only")
	}
}

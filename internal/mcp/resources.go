// ABOUTME: MCP resource implementations for the journal
// ABOUTME: Exposes the most recent entries as a JSON document
package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const recentURI = "journal://recent"

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	recent := &mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Entries",
		Description: "Last 10 journal entries, oldest first",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(recent, s.handleRecent)
}

// handleRecent implements the recent resource.
func (s *Server) handleRecent(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.recent(ctx, defaultRecentCount)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(toOutput(entries), "", "  ")
	if err != nil {
		return nil, err
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      recentURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}

	return result, nil
}

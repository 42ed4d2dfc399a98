// ABOUTME: MCP prompt definitions for the journal
// ABOUTME: Provides static context to AI assistants about journal capabilities
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `The journal is the user's personal append-only log of short, timestamped notes.

When to use it:
- The user asks to note, log, or journal something
- The user asks what they wrote recently or around a given date

Rules:
- Entries can't be edited or deleted; append a correction instead
- Keep entry text as the user phrased it
- Timestamps are UTC`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "journal-getting-started",
		Description: "Introduction to the journal and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		result := &mcp.GetPromptResult{
			Description: "Getting started with the journal",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: gettingStarted,
					},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}

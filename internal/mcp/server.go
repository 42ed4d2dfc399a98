// ABOUTME: MCP server implementation for the journal
// ABOUTME: Provides tools and resources for AI assistants to read and append entries
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/journal/internal/journal"
)

// Server wraps the MCP server with journal-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	journal   *journal.Journal
	logger    *log.Logger
}

// NewServer creates a new journal MCP server.
func NewServer(j *journal.Journal, logger *log.Logger, version string) *Server {
	impl := &mcp.Implementation{
		Name:    "journal",
		Version: version,
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		journal:   j,
		logger:    logger,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server", "journal", s.journal.Path())
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

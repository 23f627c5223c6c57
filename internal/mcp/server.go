// ABOUTME: MCP server setup for the coaching log.
// ABOUTME: Wraps MCP server with repository access and a report builder.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"courtlog/internal/report"
	"courtlog/internal/storage"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	reports   *report.Builder
}

// NewServer creates a new MCP server over the given repository.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "courtlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		reports:   report.NewBuilder(repo),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

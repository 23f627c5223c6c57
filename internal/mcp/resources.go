// ABOUTME: MCP resource implementations for the coaching log.
// ABOUTME: Provides courtlog://roster, courtlog://recent, and courtlog://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"courtlog/internal/storage"
)

func (s *Server) registerResources() {
	// courtlog://roster - All players
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "courtlog://roster",
		Name:        "Roster",
		Description: "All players on the roster",
		MIMEType:    "application/json",
	}, s.handleRosterResource)

	// courtlog://recent - Recent sessions, notes, and metrics
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "courtlog://recent",
		Name:        "Recent Activity",
		Description: "Recent sessions, video notes, and metrics",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// courtlog://summary - 30-day report payload plus metric averages
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "courtlog://summary",
		Name:        "Coaching Summary",
		Description: "Last 30 days of records plus per-player metric averages",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRosterResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	players, err := s.repo.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	result := map[string]interface{}{
		"players": players,
		"count":   len(players),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "courtlog://roster",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.repo.ListSessions(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	notes, err := s.repo.ListNotes(storage.NoteFilter{Limit: 10})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	metrics, err := s.repo.ListMetrics(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	result := map[string]interface{}{
		"sessions": sessions,
		"notes":    notes,
		"metrics":  metrics,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "courtlog://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	payload, err := s.reports.Build(start, end, "")
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	averages, err := s.repo.MetricAverages(50)
	if err != nil {
		return nil, fmt.Errorf("failed to compute metric averages: %w", err)
	}

	result := map[string]interface{}{
		"generated_at":    time.Now().Format(time.RFC3339),
		"report":          payload,
		"metric_averages": averages,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "courtlog://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

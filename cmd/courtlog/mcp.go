// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the coaching log.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"courtlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "courtlog": {
        "command": "courtlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_player      Add a player to the roster
  list_players    List all players
  add_session     Create a training session with a drill plan
  log_attendance  Record attendance (re-submitting overwrites)
  add_note        Add a video/game analysis note
  add_metric      Record a made/attempt metric
  add_message     Record a consultation message
  build_report    Aggregate records over a date window

AVAILABLE RESOURCES:

  courtlog://roster    All players
  courtlog://recent    Recent sessions, notes, and metrics
  courtlog://summary   30-day report plus metric averages`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// ABOUTME: Root Cobra command for courtlog CLI.
// ABOUTME: Handles config load and repository lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"courtlog/internal/config"
	"courtlog/internal/storage"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "courtlog",
	Short: "Basketball coaching log and report builder",
	Long: `Courtlog is a CLI tool for youth basketball coaching records.

WHAT IT TRACKS:

  Roster       players with level, position, and notes
  Sessions     training sessions with an ordered drill plan
  Attendance   per-player presence, effort, and mood per session
  Video Notes  timestamped game/video observations by category
  Metrics      made/attempt counts graded A-F (e.g. rebound rate)
  Messages     parent/player consultation notes
  Habits       a five-item daily routine checklist

QUICK START:

  $ courtlog player add "Jiho" --level 6th --position G
  $ courtlog session add --team U12 --drill "box out drill:25:High"
  $ courtlog attendance log <session> <player> --present --intensity 7
  $ courtlog note add box_out "late box out weak side" --players "Jiho"
  $ courtlog metric add rebound_rate Jiho 34 40
  $ courtlog report --days 30 --player Jiho

REPORTS AND AI FEEDBACK:

  'courtlog report' aggregates attendance, notes, and metrics over a date
  window into one payload. With an OpenAI API key configured, --ai turns
  the payload into structured coaching feedback in a chosen tone
  (coach, player, parent).

HABITS:

  $ courtlog habit checkin --done 4 --mood 8   # Log today's routine
  $ courtlog habit history --days 14           # Recent check-ins

MCP INTEGRATION:

  Run 'courtlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "courtlog": { "command": "courtlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records are stored in SQLite at ~/.local/share/courtlog/courtlog.db.
  Habit history lives in a key-value store in the same directory.
  Config is read from ~/.config/courtlog/config.json; environment
  variables (COURTLOG_DATA_DIR, COURTLOG_SCHEME, COURTLOG_CITY,
  COURTLOG_WEATHER_KEY, OPENAI_API_KEY) override it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

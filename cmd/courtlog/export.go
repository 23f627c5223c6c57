// ABOUTME: CLI commands for exporting and importing coaching log data.
// ABOUTME: Supports JSON/YAML backups and per-stream CSV downloads.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/models"
	"courtlog/internal/storage"
)

var (
	exportOutput string
	exportFrom   string
	exportTo     string
	exportDays   int
	exportPlayer string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export coaching log data",
	Long: `Export coaching log data in various formats.

FORMATS:

  json         Full JSON backup (suitable for restore)
  yaml         Full YAML backup (human-readable)
  attendance   Attendance rows as CSV, over a date window
  notes        Video notes as CSV, over a date window
  metrics      Metrics as CSV, over a date window

CSV files start with a UTF-8 byte-order mark so spreadsheet apps decode
them correctly. An empty window yields a file containing "empty" rather
than a headerless blank file.

OPTIONS:

  --output, -o   Write to file instead of stdout
  --from/--to    Date window for CSV streams (YYYY-MM-DD)
  --days         Window length ending today (default 30, ignored with --from)
  --player       Filter CSV streams to one player, like 'report --player'

EXAMPLES:

  courtlog export json -o backup.json
  courtlog export yaml
  courtlog export attendance --days 90 -o attendance.csv
  courtlog export metrics --from 2025-06-01 --to 2025-06-30 --player Jiho`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "attendance", "notes", "metrics"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml":
			data, err = repo.ExportYAML()
		case "attendance", "notes", "metrics":
			start, end, werr := exportWindow()
			if werr != nil {
				return werr
			}
			data, err = exportCSV(format, start, end, exportPlayer)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, attendance, notes, or metrics)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func exportWindow() (time.Time, time.Time, error) {
	end := time.Now()
	if exportTo != "" {
		t, err := time.Parse("2006-01-02", exportTo)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %s (use YYYY-MM-DD)", exportTo)
		}
		end = t
	}
	start := end.AddDate(0, 0, -exportDays)
	if exportFrom != "" {
		t, err := time.Parse("2006-01-02", exportFrom)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %s (use YYYY-MM-DD)", exportFrom)
		}
		start = t
	}
	return start, end, nil
}

// exportCSV serializes one stream over the window. The player filter
// matches the report's rules: exact name on attendance and metrics,
// substring on the note players field.
func exportCSV(stream string, start, end time.Time, player string) ([]byte, error) {
	switch stream {
	case "attendance":
		rows, err := repo.ListAttendanceBetween(start, end)
		if err != nil {
			return nil, err
		}
		if player != "" {
			kept := []*storage.AttendanceRow{}
			for _, r := range rows {
				if r.Player == player {
					kept = append(kept, r)
				}
			}
			rows = kept
		}
		return storage.CSVAttendance(rows)
	case "notes":
		notes, err := repo.ListNotesBetween(start, end)
		if err != nil {
			return nil, err
		}
		if player != "" {
			kept := []*models.VideoNote{}
			for _, n := range notes {
				if n.Players != nil && strings.Contains(*n.Players, player) {
					kept = append(kept, n)
				}
			}
			notes = kept
		}
		return storage.CSVNotes(notes)
	case "metrics":
		metrics, err := repo.ListMetricsBetween(start, end)
		if err != nil {
			return nil, err
		}
		if player != "" {
			kept := []*models.Metric{}
			for _, m := range metrics {
				if m.Player == player {
					kept = append(kept, m)
				}
			}
			metrics = kept
		}
		return storage.CSVMetrics(metrics)
	}
	return nil, fmt.Errorf("unknown stream: %s", stream)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import coaching log data from JSON",
	Long: `Import coaching log data from a JSON backup file.

This imports players, sessions, attendance, notes, metrics, and
messages from a previously exported JSON file. Duplicate entries
(same ID) will cause an error.

EXAMPLES:

  courtlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := repo.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "window start for CSV streams (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "window end for CSV streams (YYYY-MM-DD)")
	exportCmd.Flags().IntVar(&exportDays, "days", 30, "window length ending today (ignored with --from)")
	exportCmd.Flags().StringVar(&exportPlayer, "player", "", "filter CSV streams to one player by name")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

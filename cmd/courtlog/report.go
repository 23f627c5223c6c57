// ABOUTME: CLI command for building coaching reports.
// ABOUTME: Aggregates a date window into a payload and optionally runs AI feedback.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/feedback"
	"courtlog/internal/report"
)

var (
	reportPlayer string
	reportDays   int
	reportFrom   string
	reportTo     string
	reportTone   string
	reportAI     bool
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r"},
	Short:   "Build a coaching report",
	Long: `Build a coaching report over a date window.

The report joins attendance, video notes, and metrics for the window
into one payload. Each stream is capped at its 50 most recent entries
after filtering. With --player, attendance and metrics match the name
exactly and notes match by substring against their players field; an
unknown name yields an empty report, not an error.

AI FEEDBACK:

  With --ai and an OpenAI API key configured, the payload is turned into
  structured coaching feedback. --tone selects the persona:

    coach    data-analyst style actionable feedback (default)
    player   motivational, aimed at the player
    parent   polite consultation summary for parents

  Without a key, --ai prints a notice and the payload is still shown.

EXAMPLES:

  courtlog report                        # Last 30 days, everyone
  courtlog report --days 7 --player Jiho
  courtlog report --from 2025-06-01 --to 2025-06-30 --ai --tone parent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		end := time.Now()
		if reportTo != "" {
			t, err := time.Parse("2006-01-02", reportTo)
			if err != nil {
				return fmt.Errorf("invalid --to date: %s (use YYYY-MM-DD)", reportTo)
			}
			end = t
		}
		start := end.AddDate(0, 0, -reportDays)
		if reportFrom != "" {
			t, err := time.Parse("2006-01-02", reportFrom)
			if err != nil {
				return fmt.Errorf("invalid --from date: %s (use YYYY-MM-DD)", reportFrom)
			}
			start = t
		}

		payload, err := report.NewBuilder(repo).Build(start, end, reportPlayer)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("Report %s to %s", payload.Period.Start, payload.Period.End)
		if reportPlayer != "" {
			fmt.Printf(" for %s", reportPlayer)
		}
		fmt.Println()
		fmt.Printf("  attendance %d  notes %d  metrics %d\n",
			len(payload.Attendance), len(payload.Notes), len(payload.Metrics))

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		fmt.Println(string(data))

		if !reportAI {
			return nil
		}

		if !feedback.IsValidTone(reportTone) {
			return fmt.Errorf("unknown tone: %s (use coach, player, or parent)", reportTone)
		}

		client := feedback.NewClient(cfg.OpenAIKey)
		text, err := client.Generate(cmd.Context(), payload, feedback.Tone(reportTone))
		switch {
		case errors.Is(err, feedback.ErrNotConfigured):
			faint.Println("AI feedback is not configured; set OPENAI_API_KEY to enable it.")
			return nil
		case errors.Is(err, feedback.ErrUnavailable):
			color.Yellow("⚠ AI feedback failed: %v", err)
			return nil
		case err != nil:
			return fmt.Errorf("feedback failed: %w", err)
		}

		fmt.Println()
		color.Cyan("── AI Feedback (%s) ──", reportTone)
		fmt.Println(text)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportPlayer, "player", "", "filter to one player by name")
	reportCmd.Flags().IntVar(&reportDays, "days", 30, "window length ending today (ignored with --from)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "window start (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "window end (YYYY-MM-DD, default today)")
	reportCmd.Flags().StringVar(&reportTone, "tone", "coach", "feedback tone (coach, player, parent)")
	reportCmd.Flags().BoolVar(&reportAI, "ai", false, "generate AI feedback from the payload")

	rootCmd.AddCommand(reportCmd)
}

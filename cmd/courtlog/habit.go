// ABOUTME: CLI commands for the daily habit checklist.
// ABOUTME: Check-in shows weather and a reward image when those are available.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/feedback"
	"courtlog/internal/habit"
	"courtlog/internal/reward"
	"courtlog/internal/weather"
)

var (
	habitDone int
	habitMood int
	habitAI   bool
	habitDays int
	seedDays  int
)

var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"h"},
	Short:   "Track the daily routine checklist",
	Long: `Track a five-item daily routine checklist.

THE CHECKLIST:

  1. shooting drills
  2. stretching
  3. 8h sleep
  4. hydration
  5. film review

Each check-in records how many items were done (0-5) and a mood score
(1-10). Checking in again on the same day replaces that day's entry.
The completion rate is derived from the done count.

COMMANDS:

  checkin   Record today's check-in
  history   Show recent check-ins
  seed      Fill an empty history with sample days`,
}

var habitCheckinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record today's check-in",
	Long: `Record today's habit check-in.

With a weather API key configured (COURTLOG_WEATHER_KEY and
COURTLOG_CITY), current conditions are shown alongside the check-in.
A completion of 4 or more earns a reward image.

Examples:
  courtlog habit checkin --done 4 --mood 8
  courtlog habit checkin --done 5 --mood 9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := cfg.OpenHabits()
		if err != nil {
			return fmt.Errorf("failed to open habit store: %w", err)
		}
		defer habits.Close()

		day, err := habits.RecordToday(habitDone, habitMood)
		if err != nil {
			return err
		}

		color.Green("✓ Checked in for %s", day.Date)
		fmt.Printf("  %d/%d done (%d%%), mood %d\n",
			day.Checked, len(habit.Habits), day.Rate, day.Mood)

		faint := color.New(color.Faint)

		conditions, err := weather.NewClient(cfg.WeatherKey).Current(cmd.Context(), cfg.City, cfg.Lang)
		switch {
		case errors.Is(err, weather.ErrNotConfigured):
			faint.Println("  weather: not configured")
		case err != nil:
			faint.Printf("  weather: unavailable (%v)\n", err)
		default:
			fmt.Printf("  weather: %s, %.1f°C (feels like %.1f°C), humidity %d%%\n",
				conditions.Description, conditions.Temp, conditions.FeelsLike, conditions.Humidity)
		}

		if day.Checked >= 4 {
			img, err := reward.NewClient().Random(cmd.Context())
			if err != nil {
				faint.Printf("  reward: unavailable (%v)\n", err)
			} else {
				color.Cyan("  reward: %s", img.Category)
				fmt.Printf("  %s\n", img.URL)
			}
		}

		if habitAI {
			text, err := feedback.NewClient(cfg.OpenAIKey).Generate(cmd.Context(), day, feedback.ToneHabit)
			switch {
			case errors.Is(err, feedback.ErrNotConfigured):
				faint.Println("  AI cheer is not configured; set OPENAI_API_KEY to enable it.")
			case err != nil:
				color.Yellow("  ⚠ AI cheer failed: %v", err)
			default:
				fmt.Println()
				fmt.Println(text)
			}
		}
		return nil
	},
}

var habitHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent check-ins",
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := cfg.OpenHabits()
		if err != nil {
			return fmt.Errorf("failed to open habit store: %w", err)
		}
		defer habits.Close()

		window, err := habits.Window(habitDays)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}

		if len(window) == 0 {
			fmt.Println("No check-ins yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, day := range window {
			bar := strings.Repeat("█", day.Checked) + strings.Repeat("░", len(habit.Habits)-day.Checked)
			fmt.Printf("%s %s %3d%%  %s\n",
				day.Date, bar, day.Rate,
				faint.Sprintf("mood %d", day.Mood))
		}
		return nil
	},
}

var habitSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty history with sample days",
	Long: `Fill an empty habit history with sample days, for trying the
history and report views before real data exists. Does nothing if any
check-in already exists, and never touches today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := cfg.OpenHabits()
		if err != nil {
			return fmt.Errorf("failed to open habit store: %w", err)
		}
		defer habits.Close()

		if err := habits.Seed(seedDays); err != nil {
			return err
		}
		color.Green("✓ Seeded habit history")
		return nil
	},
}

func init() {
	habitCheckinCmd.Flags().IntVar(&habitDone, "done", 0, "items completed (0-5)")
	habitCheckinCmd.Flags().IntVar(&habitMood, "mood", 5, "mood 1-10")
	habitCheckinCmd.Flags().BoolVar(&habitAI, "ai", false, "generate an AI cheer for today's check-in")
	habitHistoryCmd.Flags().IntVar(&habitDays, "days", 14, "number of recent days to show")
	habitSeedCmd.Flags().IntVar(&seedDays, "days", 10, "number of sample days")

	habitCmd.AddCommand(habitCheckinCmd)
	habitCmd.AddCommand(habitHistoryCmd)
	habitCmd.AddCommand(habitSeedCmd)
	rootCmd.AddCommand(habitCmd)
}

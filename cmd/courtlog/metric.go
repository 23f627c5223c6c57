// ABOUTME: CLI commands for made/attempt performance metrics.
// ABOUTME: Supports add, list, and per-player averages over recent records.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/models"
)

var (
	metricDate   string
	metricScheme string
	metricMemo   string
	metricLimit  int
	avgRecent    int
)

var metricCmd = &cobra.Command{
	Use:     "metric",
	Aliases: []string{"m"},
	Short:   "Record performance metrics",
	Long: `Record made/attempt performance metrics.

Each metric stores made and attempt counts. When attempt is above zero
the percentage and an A-F grade are computed once, at write time, and
stored with the record; editing grade tiers later never rewrites
history. A metric with zero attempts stays ungraded.

GRADING:

  primary     A>=85  B>=75  C>=65  D>=55  else F  (default)
  alternate   A>=82  B>=72  C>=62  D>=52  else F

METRIC TYPES:

  rebound_rate, shooting_pct, film_engagement, other

COMMANDS:

  add    Record a metric
  list   List recent metrics
  avg    Per-player averages over recent records`,
}

var metricAddCmd = &cobra.Command{
	Use:   "add <type> <player> <made> <attempt>",
	Short: "Record a metric",
	Long: `Record a made/attempt metric for a player.

Examples:
  courtlog metric add rebound_rate Jiho 34 40
  courtlog metric add shooting_pct Minseo 7 10 --date 2025-06-10
  courtlog metric add film_engagement Jiho 0 0 --memo "session skipped"`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMetricType(args[0]) {
			return fmt.Errorf("unknown metric type: %s\nValid types: rebound_rate, shooting_pct, film_engagement, other", args[0])
		}

		made, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid made count: %s", args[2])
		}
		attempt, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid attempt count: %s", args[3])
		}
		if made < 0 || attempt < 0 || made > attempt {
			return fmt.Errorf("invalid counts: made=%d attempt=%d", made, attempt)
		}

		date := time.Now()
		if metricDate != "" {
			t, err := time.Parse("2006-01-02", metricDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", metricDate)
			}
			date = t
		}

		scheme := cfg.GetScheme()
		if metricScheme != "" {
			if !models.IsValidScheme(metricScheme) {
				return fmt.Errorf("unknown scheme: %s (use primary or alternate)", metricScheme)
			}
			scheme = models.Scheme(metricScheme)
		}

		m := models.NewMetric(date, models.MetricType(args[0]), args[1], made, attempt, scheme)
		if metricMemo != "" {
			m.WithMemo(metricMemo)
		}

		if err := repo.CreateMetric(m); err != nil {
			return fmt.Errorf("failed to create metric: %w", err)
		}

		color.Green("✓ Added %s for %s", args[0], args[1])
		if m.Percent != nil {
			fmt.Printf("  %s %d/%d = %.1f%% (grade %s)\n",
				color.New(color.Faint).Sprint(m.ID.String()[:8]),
				made, attempt, *m.Percent, *m.Grade)
		} else {
			fmt.Printf("  %s %d/%d (not graded)\n",
				color.New(color.Faint).Sprint(m.ID.String()[:8]),
				made, attempt)
		}
		return nil
	},
}

var metricListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := repo.ListMetrics(metricLimit)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}

		if len(metrics) == 0 {
			fmt.Println("No metrics found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range metrics {
			graded := faint.Sprint("not graded")
			if m.Percent != nil {
				graded = fmt.Sprintf("%5.1f%% %s", *m.Percent, gradeColor(*m.Grade))
			}
			fmt.Printf("%s %s %s %s %3d/%-3d %s\n",
				faint.Sprint(m.ID.String()[:8]),
				m.Date.Format("2006-01-02"),
				padRight(string(m.MetricType), 16),
				padRight(m.Player, 12),
				m.Made, m.Attempt,
				graded)
		}
		return nil
	},
}

var metricAvgCmd = &cobra.Command{
	Use:   "avg",
	Short: "Per-player metric averages",
	Long: `Show the average stored percentage per (metric type, player) pair,
computed over the most recent graded records (--recent, default 50).
Ungraded records do not contribute.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		averages, err := repo.MetricAverages(avgRecent)
		if err != nil {
			return fmt.Errorf("failed to compute averages: %w", err)
		}

		if len(averages) == 0 {
			fmt.Println("No graded metrics found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range averages {
			fmt.Printf("%s %s %5.1f%% %s\n",
				padRight(string(a.MetricType), 16),
				padRight(a.Player, 12),
				a.AvgPercent,
				faint.Sprintf("over %d records", a.Count))
		}
		return nil
	},
}

func gradeColor(g models.Grade) string {
	switch g {
	case models.GradeA:
		return color.GreenString(string(g))
	case models.GradeB, models.GradeC:
		return color.YellowString(string(g))
	default:
		return color.RedString(string(g))
	}
}

func init() {
	metricAddCmd.Flags().StringVar(&metricDate, "date", "", "metric date (YYYY-MM-DD, default today)")
	metricAddCmd.Flags().StringVar(&metricScheme, "scheme", "", "grading scheme (primary or alternate)")
	metricAddCmd.Flags().StringVar(&metricMemo, "memo", "", "memo")
	metricListCmd.Flags().IntVarP(&metricLimit, "limit", "n", 30, "max number of results")
	metricAvgCmd.Flags().IntVar(&avgRecent, "recent", 50, "number of recent records to average over")

	metricCmd.AddCommand(metricAddCmd)
	metricCmd.AddCommand(metricListCmd)
	metricCmd.AddCommand(metricAvgCmd)
	rootCmd.AddCommand(metricCmd)
}

// ABOUTME: CLI commands for training sessions.
// ABOUTME: Supports add with a repeatable --drill plan flag, list, and show.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/models"
)

var (
	sessionDate     string
	sessionTeam     string
	sessionTitle    string
	sessionDuration int
	sessionFocus    string
	sessionDrills   []string
	sessionLimit    int
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage training sessions",
	Long: `Manage training sessions and their drill plans.

A session is dated and carries an ordered plan of drills, each with a
duration in minutes and an intensity (Low, Mid, High). Attendance is
recorded against a session with 'courtlog attendance log'.

COMMANDS:

  add      Create a session
  list     List recent sessions
  show     Show one session with its plan`,
}

var sessionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a session",
	Long: `Add a training session.

The --drill flag is repeatable and takes "activity:minutes[:intensity]".
Intensity defaults to Mid.

Examples:
  courtlog session add --team U12 --title "Rebound basics"
  courtlog session add --date 2025-06-10 \
      --drill "warmup:10:Low" \
      --drill "box out drill:25:High" \
      --drill "scrimmage:30"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if sessionDate != "" {
			t, err := time.Parse("2006-01-02", sessionDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", sessionDate)
			}
			date = t
		}

		s := models.NewSession(date)
		if sessionTeam != "" {
			s.WithTeam(sessionTeam)
		}
		if sessionTitle != "" {
			s.WithTitle(sessionTitle)
		}
		if sessionDuration > 0 {
			s.WithDuration(sessionDuration)
		}
		if sessionFocus != "" {
			s.WithFocus(sessionFocus)
		}

		for _, spec := range sessionDrills {
			item, err := parseDrill(spec)
			if err != nil {
				return err
			}
			s.AddPlanItem(item.Activity, item.Minutes, item.Intensity)
		}

		if err := repo.CreateSession(s); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		color.Green("✓ Added session on %s", s.Date.Format("2006-01-02"))
		fmt.Printf("  %s %d drills, %d planned minutes\n",
			color.New(color.Faint).Sprint(s.ID.String()[:8]),
			len(s.Plan), s.PlanMinutes())
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions(sessionLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			title := ""
			if s.Title != nil {
				title = *s.Title
			}
			team := ""
			if s.Team != nil {
				team = faint.Sprintf(" [%s]", *s.Team)
			}
			fmt.Printf("%s %s %s%s %s\n",
				faint.Sprint(s.ID.String()[:8]),
				s.Date.Format("2006-01-02"),
				padRight(title, 20),
				team,
				faint.Sprintf("%d drills", len(s.Plan)))
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session with its plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSession(args[0])
		if err != nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", faint.Sprint(s.ID.String()[:8]), s.Date.Format("2006-01-02"))
		if s.Team != nil {
			fmt.Printf("  team:  %s\n", *s.Team)
		}
		if s.Title != nil {
			fmt.Printf("  title: %s\n", *s.Title)
		}
		if s.Focus != nil {
			fmt.Printf("  focus: %s\n", *s.Focus)
		}
		if s.DurationMinutes != nil {
			fmt.Printf("  duration: %d min\n", *s.DurationMinutes)
		}

		if len(s.Plan) > 0 {
			fmt.Println("  plan:")
			for i, item := range s.Plan {
				fmt.Printf("    %d. %s  %s\n",
					i+1,
					padRight(item.Activity, 24),
					faint.Sprintf("%d min, %s", item.Minutes, item.Intensity))
			}
			fmt.Printf("  planned total: %d min\n", s.PlanMinutes())
		}

		rows, err := repo.ListSessionAttendance(s.ID)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		if len(rows) > 0 {
			fmt.Println("  attendance:")
			for _, r := range rows {
				status := color.RedString("absent")
				if r.Present {
					status = color.GreenString("present")
				}
				name := r.Player
				if name == "" {
					name = faint.Sprint("(removed)")
				}
				fmt.Printf("    %s %s  intensity %d  mood %d\n",
					padRight(name, 16), status, r.Intensity, r.Mood)
			}
		}
		return nil
	},
}

// parseDrill parses "activity:minutes[:intensity]". Activity may itself
// contain no colons; minutes must be a positive integer.
func parseDrill(spec string) (models.PlanItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return models.PlanItem{}, fmt.Errorf("invalid drill %q (use \"activity:minutes[:intensity]\")", spec)
	}

	activity := strings.TrimSpace(parts[0])
	if activity == "" {
		return models.PlanItem{}, fmt.Errorf("invalid drill %q: empty activity", spec)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minutes <= 0 {
		return models.PlanItem{}, fmt.Errorf("invalid drill %q: minutes must be a positive integer", spec)
	}

	intensity := models.IntensityMid
	if len(parts) == 3 {
		intensity, err = models.ParseIntensity(strings.TrimSpace(parts[2]))
		if err != nil {
			return models.PlanItem{}, err
		}
	}

	return models.PlanItem{Activity: activity, Minutes: minutes, Intensity: intensity}, nil
}

func init() {
	sessionAddCmd.Flags().StringVar(&sessionDate, "date", "", "session date (YYYY-MM-DD, default today)")
	sessionAddCmd.Flags().StringVar(&sessionTeam, "team", "", "team or class label")
	sessionAddCmd.Flags().StringVar(&sessionTitle, "title", "", "session title")
	sessionAddCmd.Flags().IntVar(&sessionDuration, "duration", 0, "total duration in minutes")
	sessionAddCmd.Flags().StringVar(&sessionFocus, "focus", "", "one-line focus")
	sessionAddCmd.Flags().StringArrayVar(&sessionDrills, "drill", nil, "drill as \"activity:minutes[:intensity]\" (repeatable)")
	sessionListCmd.Flags().IntVarP(&sessionLimit, "limit", "n", 20, "max number of results")

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	rootCmd.AddCommand(sessionCmd)
}

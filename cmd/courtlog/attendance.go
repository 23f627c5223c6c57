// ABOUTME: CLI commands for attendance records.
// ABOUTME: Logging is an upsert; re-submitting a pair overwrites the record.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/models"
)

var (
	attAbsent    bool
	attIntensity int
	attMood      int
	attMemo      string
)

var attendanceCmd = &cobra.Command{
	Use:     "attendance",
	Aliases: []string{"att"},
	Short:   "Record and view attendance",
	Long: `Record and view attendance per session and player.

Each (session, player) pair holds at most one record. Logging the same
pair again overwrites presence, intensity, mood, and memo; it never
creates a duplicate row.

COMMANDS:

  log    Record attendance for a player at a session
  list   List attendance for a session`,
}

var attendanceLogCmd = &cobra.Command{
	Use:   "log <session-id> <player-id>",
	Short: "Record attendance",
	Long: `Record attendance for a player at a session.

Both IDs accept an 8-character prefix. Intensity and mood are 1-10 and
default to 5. Players are marked present unless --absent is given.

Examples:
  courtlog attendance log abc12345 def67890 --intensity 7 --mood 8
  courtlog attendance log abc12345 def67890 --absent --memo "sick"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSession(args[0])
		if err != nil {
			return fmt.Errorf("session not found: %s", args[0])
		}
		p, err := repo.GetPlayer(args[1])
		if err != nil {
			return fmt.Errorf("player not found: %s", args[1])
		}

		present := !attAbsent
		if attIntensity < 1 || attIntensity > 10 {
			return fmt.Errorf("intensity must be 1-10, got %d", attIntensity)
		}
		if attMood < 1 || attMood > 10 {
			return fmt.Errorf("mood must be 1-10, got %d", attMood)
		}

		a := models.NewAttendance(s.ID, p.ID, present, attIntensity, attMood)
		if attMemo != "" {
			a.WithMemo(attMemo)
		}

		if err := repo.UpsertAttendance(a); err != nil {
			return fmt.Errorf("failed to record attendance: %w", err)
		}

		if present {
			color.Green("✓ %s present at %s", p.Name, s.Date.Format("2006-01-02"))
		} else {
			color.Yellow("✗ %s absent at %s", p.Name, s.Date.Format("2006-01-02"))
		}
		return nil
	},
}

var attendanceListCmd = &cobra.Command{
	Use:     "list <session-id>",
	Aliases: []string{"ls"},
	Short:   "List attendance for a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSession(args[0])
		if err != nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		rows, err := repo.ListSessionAttendance(s.ID)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No attendance recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range rows {
			status := color.RedString("absent ")
			if r.Present {
				status = color.GreenString("present")
			}
			name := r.Player
			if name == "" {
				name = faint.Sprint("(removed)")
			}
			memo := ""
			if r.Memo != nil && *r.Memo != "" {
				memo = faint.Sprintf(" (%s)", truncate(*r.Memo, 30))
			}
			fmt.Printf("%s %s  intensity %2d  mood %2d%s\n",
				padRight(name, 16), status, r.Intensity, r.Mood, memo)
		}
		return nil
	},
}

func init() {
	attendanceLogCmd.Flags().BoolVar(&attAbsent, "absent", false, "mark as absent (present is the default)")
	attendanceLogCmd.Flags().IntVar(&attIntensity, "intensity", 5, "effort 1-10")
	attendanceLogCmd.Flags().IntVar(&attMood, "mood", 5, "mood 1-10")
	attendanceLogCmd.Flags().StringVar(&attMemo, "memo", "", "memo")

	attendanceCmd.AddCommand(attendanceLogCmd)
	attendanceCmd.AddCommand(attendanceListCmd)
	rootCmd.AddCommand(attendanceCmd)
}

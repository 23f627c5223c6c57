// ABOUTME: CLI commands for video/game analysis notes.
// ABOUTME: Supports add and list with category, team, and keyword filters.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/models"
	"courtlog/internal/storage"
)

var (
	noteDate     string
	noteGame     string
	noteTeam     string
	noteSegment  string
	noteClock    string
	notePlayers  string
	listCategory string
	listTeam     string
	listKeyword  string
	noteLimit    int
)

var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"n"},
	Short:   "Record video/game analysis notes",
	Long: `Record timestamped video and game analysis notes.

Notes are append-only. Each note has a category, an optional clock label
(free text like "09:50"), and an optional comma-joined list of player
names. Reports match players against that list by substring.

CATEGORIES:

  rebound, box_out, defense, offense, transition, turnover, other

COMMANDS:

  add    Add a note
  list   List notes with optional filters`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add <category> <text>",
	Short: "Add a note",
	Long: `Add a video/game analysis note.

Examples:
  courtlog note add box_out "late box out weak side" --players "Jiho, Minseo"
  courtlog note add defense "good rotation" --game "vs Tigers" --segment 3Q --clock 09:50`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidNoteCategory(args[0]) {
			return fmt.Errorf("unknown category: %s\nValid categories: rebound, box_out, defense, offense, transition, turnover, other", args[0])
		}

		date := time.Now()
		if noteDate != "" {
			t, err := time.Parse("2006-01-02", noteDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", noteDate)
			}
			date = t
		}

		n := models.NewVideoNote(date, models.NoteCategory(args[0]), args[1])
		if noteGame != "" {
			n.WithGame(noteGame)
		}
		if noteTeam != "" {
			n.WithTeam(noteTeam)
		}
		if noteSegment != "" {
			n.WithSegment(noteSegment)
		}
		if noteClock != "" {
			n.WithClock(noteClock)
		}
		if notePlayers != "" {
			n.WithPlayers(notePlayers)
		}

		if err := repo.CreateNote(n); err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		color.Green("✓ Added %s note", args[0])
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(n.ID.String()[:8]),
			truncate(n.Text, 50))
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes",
	Long: `List video notes, newest first.

FILTERS:

  --category   exact category match
  --team       substring match on the team label
  --keyword    substring match across text, players, game, and clock

Examples:
  courtlog note list
  courtlog note list --category box_out
  courtlog note list --keyword Jiho -n 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := storage.NoteFilter{
			Team:    listTeam,
			Keyword: listKeyword,
			Limit:   noteLimit,
		}
		if listCategory != "" {
			if !models.IsValidNoteCategory(listCategory) {
				return fmt.Errorf("unknown category: %s", listCategory)
			}
			filter.Category = models.NoteCategory(listCategory)
		}

		notes, err := repo.ListNotes(filter)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}

		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, n := range notes {
			where := ""
			if n.Segment != nil || n.Clock != nil {
				seg, clk := "", ""
				if n.Segment != nil {
					seg = *n.Segment
				}
				if n.Clock != nil {
					clk = *n.Clock
				}
				where = faint.Sprintf(" [%s %s]", seg, clk)
			}
			players := ""
			if n.Players != nil && *n.Players != "" {
				players = faint.Sprintf(" (%s)", *n.Players)
			}
			fmt.Printf("%s %s %s%s %s%s\n",
				faint.Sprint(n.ID.String()[:8]),
				n.Date.Format("2006-01-02"),
				padRight(string(n.Category), 10),
				where,
				truncate(n.Text, 50),
				players)
		}
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&noteDate, "date", "", "note date (YYYY-MM-DD, default today)")
	noteAddCmd.Flags().StringVar(&noteGame, "game", "", "game or video label")
	noteAddCmd.Flags().StringVar(&noteTeam, "team", "", "team label")
	noteAddCmd.Flags().StringVar(&noteSegment, "segment", "", "quarter or section label (e.g. 3Q)")
	noteAddCmd.Flags().StringVar(&noteClock, "clock", "", "timestamp label (e.g. 09:50)")
	noteAddCmd.Flags().StringVar(&notePlayers, "players", "", "comma-joined player names")

	noteListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	noteListCmd.Flags().StringVar(&listTeam, "team", "", "filter by team substring")
	noteListCmd.Flags().StringVar(&listKeyword, "keyword", "", "keyword search")
	noteListCmd.Flags().IntVarP(&noteLimit, "limit", "n", 20, "max number of results")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	rootCmd.AddCommand(noteCmd)
}

// ABOUTME: CLI commands for roster management.
// ABOUTME: Supports add, list, show, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/models"
)

var (
	playerLevel    string
	playerPosition string
	playerNotes    string
)

var playerCmd = &cobra.Command{
	Use:     "player",
	Aliases: []string{"p"},
	Short:   "Manage the roster",
	Long: `Manage the player roster.

Players are referenced by ID prefix in attendance commands and by name in
notes, metrics, and messages. Deleting a player keeps their attendance
history; those rows show an empty name afterwards.

COMMANDS:

  add      Add a player to the roster
  list     List all players
  show     Show one player
  delete   Remove a player from the roster`,
}

var playerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player",
	Long: `Add a player to the roster.

Examples:
  courtlog player add "Jiho"
  courtlog player add "Minseo" --level 6th --position G
  courtlog player add "Haneul" --position F/C --notes "left-handed"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewPlayer(args[0])
		if playerLevel != "" {
			p.WithLevel(playerLevel)
		}
		if playerPosition != "" {
			p.WithPosition(playerPosition)
		}
		if playerNotes != "" {
			p.WithNotes(playerNotes)
		}

		if err := repo.CreatePlayer(p); err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}

		color.Green("✓ Added %s", p.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(p.ID.String()[:8]))
		return nil
	},
}

var playerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List players",
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := repo.ListPlayers()
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}

		if len(players) == 0 {
			fmt.Println("No players on the roster.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range players {
			details := []string{}
			if p.Level != nil {
				details = append(details, *p.Level)
			}
			if p.Position != nil {
				details = append(details, *p.Position)
			}
			suffix := ""
			if len(details) > 0 {
				suffix = faint.Sprintf(" (%s)", strings.Join(details, ", "))
			}
			fmt.Printf("%s %s%s\n",
				faint.Sprint(p.ID.String()[:8]),
				padRight(p.Name, 16),
				suffix)
		}
		return nil
	},
}

var playerShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetPlayer(args[0])
		if err != nil {
			return fmt.Errorf("player not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", faint.Sprint(p.ID.String()[:8]), p.Name)
		if p.Level != nil {
			fmt.Printf("  level:    %s\n", *p.Level)
		}
		if p.Position != nil {
			fmt.Printf("  position: %s\n", *p.Position)
		}
		if p.Notes != nil {
			fmt.Printf("  notes:    %s\n", *p.Notes)
		}
		fmt.Printf("  added:    %s\n", p.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

var playerDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a player",
	Long: `Delete a player by ID or ID prefix.

Attendance rows that reference the player are kept; their player name
shows as empty in listings and reports afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetPlayer(args[0])
		if err != nil {
			return fmt.Errorf("player not found: %s", args[0])
		}

		if err := repo.DeletePlayer(args[0]); err != nil {
			return fmt.Errorf("failed to delete player: %w", err)
		}

		color.Yellow("✗ Deleted %s", p.Name)
		return nil
	},
}

func init() {
	playerAddCmd.Flags().StringVar(&playerLevel, "level", "", "grade/level label (e.g. 6th, adult)")
	playerAddCmd.Flags().StringVar(&playerPosition, "position", "", "position (G, F, C, G/F, F/C)")
	playerAddCmd.Flags().StringVar(&playerNotes, "notes", "", "free-text notes")

	playerCmd.AddCommand(playerAddCmd)
	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerShowCmd)
	playerCmd.AddCommand(playerDeleteCmd)
	rootCmd.AddCommand(playerCmd)
}

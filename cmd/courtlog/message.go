// ABOUTME: CLI commands for parent/player consultation messages.
// ABOUTME: Supports add and list; messages are append-only.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/models"
)

var (
	messageDate  string
	messageLimit int
)

var messageCmd = &cobra.Command{
	Use:     "message",
	Aliases: []string{"msg"},
	Short:   "Record consultation messages",
	Long: `Record parent/player consultation messages.

Messages are dated, attributed to a sender role (parent, player, coach,
other), and reference a player by name. They are append-only.

COMMANDS:

  add    Record a message
  list   List recent messages`,
}

var messageAddCmd = &cobra.Command{
	Use:   "add <player> <from> <text>",
	Short: "Record a message",
	Long: `Record a consultation message about a player.

Examples:
  courtlog message add Jiho parent "wants more shooting practice"
  courtlog message add Minseo coach "improving box outs, keep at it"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidSenderRole(args[1]) {
			return fmt.Errorf("unknown sender role: %s (use parent, player, coach, or other)", args[1])
		}

		date := time.Now()
		if messageDate != "" {
			t, err := time.Parse("2006-01-02", messageDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", messageDate)
			}
			date = t
		}

		m := models.NewMessage(date, args[0], models.SenderRole(args[1]), args[2])
		if err := repo.CreateMessage(m); err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}

		color.Green("✓ Recorded %s message about %s", args[1], args[0])
		return nil
	},
}

var messageListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		messages, err := repo.ListMessages(messageLimit)
		if err != nil {
			return fmt.Errorf("failed to list messages: %w", err)
		}

		if len(messages) == 0 {
			fmt.Println("No messages found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range messages {
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(m.ID.String()[:8]),
				m.Date.Format("2006-01-02"),
				padRight(m.Player, 12),
				faint.Sprint(padRight(string(m.From), 6)),
				truncate(m.Text, 50))
		}
		return nil
	},
}

func init() {
	messageAddCmd.Flags().StringVar(&messageDate, "date", "", "message date (YYYY-MM-DD, default today)")
	messageListCmd.Flags().IntVarP(&messageLimit, "limit", "n", 30, "max number of results")

	messageCmd.AddCommand(messageAddCmd)
	messageCmd.AddCommand(messageListCmd)
	rootCmd.AddCommand(messageCmd)
}

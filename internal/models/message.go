// ABOUTME: Message model for parent/player consultation notes.
// ABOUTME: Append-only; player is referenced by name.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SenderRole identifies who sent a message.
type SenderRole string

const (
	SenderParent SenderRole = "parent"
	SenderPlayer SenderRole = "player"
	SenderCoach  SenderRole = "coach"
	SenderOther  SenderRole = "other"
)

// IsValidSenderRole checks if a string is a valid sender role.
func IsValidSenderRole(s string) bool {
	switch SenderRole(s) {
	case SenderParent, SenderPlayer, SenderCoach, SenderOther:
		return true
	}
	return false
}

// Message is a dated consultation message about a player.
type Message struct {
	ID        uuid.UUID
	Date      time.Time
	Player    string
	From      SenderRole
	Text      string
	CreatedAt time.Time
}

// NewMessage creates a message for the given date and player.
func NewMessage(date time.Time, player string, from SenderRole, text string) *Message {
	return &Message{
		ID:        uuid.New(),
		Date:      date,
		Player:    player,
		From:      from,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// ABOUTME: VideoNote model for timestamped game/video analysis notes.
// ABOUTME: Append-only; players field is comma-joined free text, not a foreign key.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteCategory classifies a video note.
type NoteCategory string

const (
	CategoryRebound    NoteCategory = "rebound"
	CategoryBoxOut     NoteCategory = "box_out"
	CategoryDefense    NoteCategory = "defense"
	CategoryOffense    NoteCategory = "offense"
	CategoryTransition NoteCategory = "transition"
	CategoryTurnover   NoteCategory = "turnover"
	CategoryOther      NoteCategory = "other"
)

// AllNoteCategories returns all valid note categories.
var AllNoteCategories = []NoteCategory{
	CategoryRebound, CategoryBoxOut, CategoryDefense, CategoryOffense,
	CategoryTransition, CategoryTurnover, CategoryOther,
}

// IsValidNoteCategory checks if a string is a valid note category.
func IsValidNoteCategory(s string) bool {
	for _, c := range AllNoteCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// VideoNote is a timestamped observation from a game or practice video.
// Clock is a free-text timestamp label like "09:50"; it is never parsed.
// Players is a comma-joined list of names, matched by substring in reports.
type VideoNote struct {
	ID        uuid.UUID
	Date      time.Time
	Game      *string // game/video label
	Team      *string
	Segment   *string // quarter or section label, e.g. "3Q", "highlights"
	Clock     *string
	Category  NoteCategory
	Players   *string
	Text      string
	CreatedAt time.Time
}

// NewVideoNote creates a video note for the given date.
func NewVideoNote(date time.Time, category NoteCategory, text string) *VideoNote {
	return &VideoNote{
		ID:        uuid.New(),
		Date:      date,
		Category:  category,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// WithGame sets the game/video label.
func (n *VideoNote) WithGame(game string) *VideoNote {
	n.Game = &game
	return n
}

// WithTeam sets the team label.
func (n *VideoNote) WithTeam(team string) *VideoNote {
	n.Team = &team
	return n
}

// WithSegment sets the quarter/section label.
func (n *VideoNote) WithSegment(segment string) *VideoNote {
	n.Segment = &segment
	return n
}

// WithClock sets the free-text timestamp label.
func (n *VideoNote) WithClock(clock string) *VideoNote {
	n.Clock = &clock
	return n
}

// WithPlayers sets the comma-joined player names.
func (n *VideoNote) WithPlayers(players string) *VideoNote {
	n.Players = &players
	return n
}

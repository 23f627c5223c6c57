// ABOUTME: Player model for roster management.
// ABOUTME: Players are referenced by attendance rows and by name elsewhere.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a tracked individual on the roster.
type Player struct {
	ID        uuid.UUID
	Name      string
	Level     *string // grade/level label, e.g. "6th" or "adult"
	Position  *string // G, F, C, G/F, F/C
	Notes     *string
	CreatedAt time.Time
}

// NewPlayer creates a new Player with generated UUID and current timestamp.
func NewPlayer(name string) *Player {
	return &Player{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// WithLevel sets the grade/level label.
func (p *Player) WithLevel(level string) *Player {
	p.Level = &level
	return p
}

// WithPosition sets the position.
func (p *Player) WithPosition(pos string) *Player {
	p.Position = &pos
	return p
}

// WithNotes sets free-text notes.
func (p *Player) WithNotes(notes string) *Player {
	p.Notes = &notes
	return p
}

// ABOUTME: Attendance model keyed by (session, player).
// ABOUTME: The only mutable-by-replace record; re-submission overwrites fields.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance records presence and condition for one player at one session.
// Unique on (SessionID, PlayerID); the store upserts on that pair.
type Attendance struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	PlayerID  uuid.UUID
	Present   bool
	Intensity int // 1-10
	Mood      int // 1-10
	Memo      *string
	CreatedAt time.Time
}

// NewAttendance creates an attendance record for a session/player pair.
func NewAttendance(sessionID, playerID uuid.UUID, present bool, intensity, mood int) *Attendance {
	return &Attendance{
		ID:        uuid.New(),
		SessionID: sessionID,
		PlayerID:  playerID,
		Present:   present,
		Intensity: intensity,
		Mood:      mood,
		CreatedAt: time.Now(),
	}
}

// WithMemo sets the memo.
func (a *Attendance) WithMemo(memo string) *Attendance {
	a.Memo = &memo
	return a
}

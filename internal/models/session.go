// ABOUTME: Session and PlanItem models for training sessions.
// ABOUTME: Sessions carry an ordered drill plan serialized as JSON.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Intensity is the effort level of a plan item.
type Intensity string

const (
	IntensityLow  Intensity = "Low"
	IntensityMid  Intensity = "Mid"
	IntensityHigh Intensity = "High"
)

// ParseIntensity validates an intensity label.
func ParseIntensity(s string) (Intensity, error) {
	switch Intensity(s) {
	case IntensityLow, IntensityMid, IntensityHigh:
		return Intensity(s), nil
	}
	return "", fmt.Errorf("unknown intensity: %s (use Low, Mid, or High)", s)
}

// PlanItem is one drill in a session plan.
type PlanItem struct {
	Activity  string    `json:"activity"`
	Minutes   int       `json:"minutes"`
	Intensity Intensity `json:"intensity"`
}

// Session represents a training session with its drill plan.
// Sessions are immutable once saved except by full replacement.
type Session struct {
	ID              uuid.UUID
	Date            time.Time
	Team            *string
	Title           *string
	DurationMinutes *int
	Focus           *string
	Plan            []PlanItem
	CreatedAt       time.Time
}

// NewSession creates a new Session dated on the given day.
func NewSession(date time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// WithTeam sets the team/class label.
func (s *Session) WithTeam(team string) *Session {
	s.Team = &team
	return s
}

// WithTitle sets the session title.
func (s *Session) WithTitle(title string) *Session {
	s.Title = &title
	return s
}

// WithDuration sets the total duration in minutes.
func (s *Session) WithDuration(minutes int) *Session {
	s.DurationMinutes = &minutes
	return s
}

// WithFocus sets the one-line focus for the session.
func (s *Session) WithFocus(focus string) *Session {
	s.Focus = &focus
	return s
}

// AddPlanItem appends a drill to the session plan.
func (s *Session) AddPlanItem(activity string, minutes int, intensity Intensity) *Session {
	s.Plan = append(s.Plan, PlanItem{Activity: activity, Minutes: minutes, Intensity: intensity})
	return s
}

// PlanMinutes returns the total planned minutes across all drills.
func (s *Session) PlanMinutes() int {
	total := 0
	for _, item := range s.Plan {
		total += item.Minutes
	}
	return total
}

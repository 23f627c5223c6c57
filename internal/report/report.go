// ABOUTME: Report aggregation over a date window and optional player filter.
// ABOUTME: Joins attendance, video notes, and metrics into one payload.
package report

import (
	"fmt"
	"strings"
	"time"

	"courtlog/internal/models"
	"courtlog/internal/storage"
)

// streamCap bounds each record stream in the payload. Capping happens after
// filtering and takes the tail of the date-descending streams, so an overfull
// window drops from its newest entries first. The tail direction is part of
// the payload contract, not an accident of ordering.
const streamCap = 50

// Period is the inclusive date window a report covers.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NoteRow is a video note flattened for the payload.
type NoteRow struct {
	Date     string  `json:"note_date"`
	Game     *string `json:"game,omitempty"`
	Team     *string `json:"team,omitempty"`
	Segment  *string `json:"segment,omitempty"`
	Clock    *string `json:"clock,omitempty"`
	Category string  `json:"category"`
	Players  *string `json:"players,omitempty"`
	Note     string  `json:"note"`
}

// MetricRow is a metric flattened for the payload. Percent and grade are
// the stored values; absent means the attempt count was zero.
type MetricRow struct {
	Date       string   `json:"metric_date"`
	MetricType string   `json:"metric_type"`
	Player     string   `json:"player"`
	Made       int      `json:"made"`
	Attempt    int      `json:"attempt"`
	Percent    *float64 `json:"percent,omitempty"`
	Grade      *string  `json:"grade,omitempty"`
	Memo       *string  `json:"memo,omitempty"`
}

// Payload is the structured summary handed to the feedback service.
// Streams are always present; empty windows yield empty slices, never null.
type Payload struct {
	Period     Period                   `json:"period"`
	Player     string                   `json:"target_player,omitempty"`
	Attendance []*storage.AttendanceRow `json:"attendance_summary"`
	Notes      []*NoteRow               `json:"video_notes"`
	Metrics    []*MetricRow             `json:"metrics"`
}

// Builder assembles report payloads from the record store.
type Builder struct {
	repo storage.Repository
}

// NewBuilder creates a report builder over the given repository.
func NewBuilder(repo storage.Repository) *Builder {
	return &Builder{repo: repo}
}

// Build produces a payload for [start, end] inclusive. When player is
// non-empty, attendance and metrics filter by exact name and notes by
// substring containment in the free-text players field. An unknown player
// yields all-empty streams without error.
func (b *Builder) Build(start, end time.Time, player string) (*Payload, error) {
	attendance, err := b.repo.ListAttendanceBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	notes, err := b.repo.ListNotesBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	metrics, err := b.repo.ListMetricsBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	p := &Payload{
		Period: Period{
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		},
		Player:     player,
		Attendance: []*storage.AttendanceRow{},
		Notes:      []*NoteRow{},
		Metrics:    []*MetricRow{},
	}

	for _, row := range attendance {
		if player != "" && row.Player != player {
			continue
		}
		p.Attendance = append(p.Attendance, row)
	}

	for _, n := range notes {
		if player != "" && !noteMentions(n, player) {
			continue
		}
		p.Notes = append(p.Notes, &NoteRow{
			Date:     n.Date.Format("2006-01-02"),
			Game:     n.Game,
			Team:     n.Team,
			Segment:  n.Segment,
			Clock:    n.Clock,
			Category: string(n.Category),
			Players:  n.Players,
			Note:     n.Text,
		})
	}

	for _, m := range metrics {
		if player != "" && m.Player != player {
			continue
		}
		var grade *string
		if m.Grade != nil {
			g := string(*m.Grade)
			grade = &g
		}
		p.Metrics = append(p.Metrics, &MetricRow{
			Date:       m.Date.Format("2006-01-02"),
			MetricType: string(m.MetricType),
			Player:     m.Player,
			Made:       m.Made,
			Attempt:    m.Attempt,
			Percent:    m.Percent,
			Grade:      grade,
			Memo:       m.Memo,
		})
	}

	p.Attendance = tailAttendance(p.Attendance, streamCap)
	p.Notes = tailNotes(p.Notes, streamCap)
	p.Metrics = tailMetrics(p.Metrics, streamCap)

	return p, nil
}

// noteMentions reports whether the note's free-text players field contains
// the player name. This is a deliberately weak, name-substring join; the
// players column is comma-joined free text, not a foreign key.
func noteMentions(n *models.VideoNote, player string) bool {
	if n.Players == nil {
		return false
	}
	return strings.Contains(*n.Players, player)
}

func tailAttendance(rows []*storage.AttendanceRow, n int) []*storage.AttendanceRow {
	if len(rows) > n {
		return rows[len(rows)-n:]
	}
	return rows
}

func tailNotes(rows []*NoteRow, n int) []*NoteRow {
	if len(rows) > n {
		return rows[len(rows)-n:]
	}
	return rows
}

func tailMetrics(rows []*MetricRow, n int) []*MetricRow {
	if len(rows) > n {
		return rows[len(rows)-n:]
	}
	return rows
}

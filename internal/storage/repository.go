// ABOUTME: Repository interface for the coaching log store.
// ABOUTME: Defines the insert/upsert/query/delete contract over six record kinds.
package storage

import (
	"time"

	"github.com/google/uuid"

	"courtlog/internal/models"
)

// AttendanceRow is an attendance record joined with its session and player.
// Player is empty when the player was deleted after the record was written;
// dangling references are a documented possibility, not an error.
type AttendanceRow struct {
	SessionDate time.Time `json:"session_date"`
	Team        *string   `json:"team,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Focus       *string   `json:"focus,omitempty"`
	Player      string    `json:"player"`
	Present     bool      `json:"present"`
	Intensity   int       `json:"intensity"`
	Mood        int       `json:"mood"`
	Memo        *string   `json:"memo,omitempty"`
}

// NoteFilter narrows video note listings. Zero values pass everything.
type NoteFilter struct {
	Category models.NoteCategory // exact match
	Team     string              // substring match
	Keyword  string              // substring across note/players/game/clock
	Limit    int
}

// MetricAverage is the arithmetic mean of stored percents for one
// (metric type, player) pair, over the most recent records.
type MetricAverage struct {
	MetricType models.MetricType
	Player     string
	AvgPercent float64
	Count      int
}

// Repository defines the storage interface for coaching log data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Player operations
	CreatePlayer(p *models.Player) error
	GetPlayer(idOrPrefix string) (*models.Player, error)
	ListPlayers() ([]*models.Player, error)
	DeletePlayer(idOrPrefix string) error

	// Session operations
	CreateSession(s *models.Session) error
	GetSession(idOrPrefix string) (*models.Session, error)
	ListSessions(limit int) ([]*models.Session, error)

	// Attendance operations. Upsert is the only write path; re-submitting
	// the same (session, player) pair overwrites present/intensity/mood/memo
	// and leaves identity and creation time untouched.
	UpsertAttendance(a *models.Attendance) error
	ListSessionAttendance(sessionID uuid.UUID) ([]*AttendanceRow, error)
	ListAttendanceBetween(start, end time.Time) ([]*AttendanceRow, error)

	// Video note operations (append-only)
	CreateNote(n *models.VideoNote) error
	ListNotes(filter NoteFilter) ([]*models.VideoNote, error)
	ListNotesBetween(start, end time.Time) ([]*models.VideoNote, error)

	// Metric operations (append-only, derived fields frozen at write)
	CreateMetric(m *models.Metric) error
	ListMetrics(limit int) ([]*models.Metric, error)
	ListMetricsBetween(start, end time.Time) ([]*models.Metric, error)
	MetricAverages(recent int) ([]*MetricAverage, error)

	// Message operations (append-only)
	CreateMessage(m *models.Message) error
	ListMessages(limit int) ([]*models.Message, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}

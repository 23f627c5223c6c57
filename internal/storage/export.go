// ABOUTME: Export and import functionality for coaching log data.
// ABOUTME: Supports JSON/YAML full backups and per-stream CSV downloads.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"courtlog/internal/models"
)

// utf8BOM is prepended to CSV output so spreadsheet apps detect UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvEmptyPlaceholder is written instead of a headerless empty file.
const csvEmptyPlaceholder = "empty"

// ExportData represents the full export format for coaching log data.
type ExportData struct {
	Version    string               `json:"version" yaml:"version"`
	ExportedAt time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool       string               `json:"tool" yaml:"tool"`
	Players    []*models.Player     `json:"players" yaml:"players"`
	Sessions   []*models.Session    `json:"sessions" yaml:"sessions"`
	Attendance []*models.Attendance `json:"attendance" yaml:"attendance"`
	Notes      []*models.VideoNote  `json:"notes" yaml:"notes"`
	Metrics    []*models.Metric     `json:"metrics" yaml:"metrics"`
	Messages   []*models.Message    `json:"messages" yaml:"messages"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	players, err := d.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	sessions, err := d.ListSessions(0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	attendance, err := d.listAllAttendance()
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	notes, err := d.ListNotes(NoteFilter{})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	metrics, err := d.ListMetrics(0)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	messages, err := d.ListMessages(0)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "courtlog",
		Players:    players,
		Sessions:   sessions,
		Attendance: attendance,
		Notes:      notes,
		Metrics:    metrics,
		Messages:   messages,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, p := range data.Players {
		if err := d.CreatePlayer(p); err != nil {
			return fmt.Errorf("import player: %w", err)
		}
	}
	for _, s := range data.Sessions {
		if err := d.CreateSession(s); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	for _, a := range data.Attendance {
		if err := d.UpsertAttendance(a); err != nil {
			return fmt.Errorf("import attendance: %w", err)
		}
	}
	for _, n := range data.Notes {
		if err := d.CreateNote(n); err != nil {
			return fmt.Errorf("import note: %w", err)
		}
	}
	for _, m := range data.Metrics {
		if err := d.CreateMetric(m); err != nil {
			return fmt.Errorf("import metric: %w", err)
		}
	}
	for _, m := range data.Messages {
		if err := d.CreateMessage(m); err != nil {
			return fmt.Errorf("import message: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

// CSVAttendance serializes joined attendance rows as UTF-8 CSV with BOM.
// An empty stream yields the literal placeholder, never an empty file.
func CSVAttendance(rows []*AttendanceRow) ([]byte, error) {
	if len(rows) == 0 {
		return []byte(csvEmptyPlaceholder), nil
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	header := []string{"session_date", "team", "title", "focus", "player", "present", "intensity", "mood", "memo"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.SessionDate.Format("2006-01-02"),
			deref(r.Team),
			deref(r.Title),
			deref(r.Focus),
			r.Player,
			strconv.FormatBool(r.Present),
			strconv.Itoa(r.Intensity),
			strconv.Itoa(r.Mood),
			deref(r.Memo),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CSVNotes serializes video notes as UTF-8 CSV with BOM.
func CSVNotes(notes []*models.VideoNote) ([]byte, error) {
	if len(notes) == 0 {
		return []byte(csvEmptyPlaceholder), nil
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	header := []string{"note_date", "game", "team", "segment", "clock", "category", "players", "note"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, n := range notes {
		record := []string{
			n.Date.Format("2006-01-02"),
			deref(n.Game),
			deref(n.Team),
			deref(n.Segment),
			deref(n.Clock),
			string(n.Category),
			deref(n.Players),
			n.Text,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CSVMetrics serializes metrics as UTF-8 CSV with BOM. Absent percent and
// grade serialize as empty cells, not zeroes.
func CSVMetrics(metrics []*models.Metric) ([]byte, error) {
	if len(metrics) == 0 {
		return []byte(csvEmptyPlaceholder), nil
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	header := []string{"metric_date", "metric_type", "player", "made", "attempt", "percent", "grade", "memo"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range metrics {
		percent := ""
		if m.Percent != nil {
			percent = strconv.FormatFloat(*m.Percent, 'f', 1, 64)
		}
		grade := ""
		if m.Grade != nil {
			grade = string(*m.Grade)
		}
		record := []string{
			m.Date.Format("2006-01-02"),
			string(m.MetricType),
			m.Player,
			strconv.Itoa(m.Made),
			strconv.Itoa(m.Attempt),
			percent,
			grade,
			deref(m.Memo),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

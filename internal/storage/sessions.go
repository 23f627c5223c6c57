// ABOUTME: Session CRUD operations for SQLite storage.
// ABOUTME: Drill plans are serialized to plan_json; sessions have no delete path.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtlog/internal/models"
)

// CreateSession stores a new session with its serialized drill plan.
func (d *DB) CreateSession(s *models.Session) error {
	planJSON, err := json.Marshal(s.Plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	query := `
		INSERT INTO sessions (id, session_date, team, title, duration_minutes, focus, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		s.ID.String(),
		s.Date.Format(dateFormat),
		s.Team,
		s.Title,
		s.DurationMinutes,
		s.Focus,
		string(planJSON),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID or ID prefix.
func (d *DB) GetSession(idOrPrefix string) (*models.Session, error) {
	id, err := d.resolveID("sessions", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, session_date, team, title, duration_minutes, focus, plan_json, created_at
		FROM sessions
		WHERE id = ?
	`
	s, err := scanSession(d.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found: %s", idOrPrefix)
		}
		return nil, err
	}
	return s, nil
}

// ListSessions retrieves sessions ordered most recent first.
func (d *DB) ListSessions(limit int) ([]*models.Session, error) {
	query := `
		SELECT id, session_date, team, title, duration_minutes, focus, plan_json, created_at
		FROM sessions
		ORDER BY session_date DESC, created_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSessionRows(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSessionFrom(sc rowScanner) (*models.Session, error) {
	var s models.Session
	var idStr, sessionDate, createdAt string
	var team, title, focus, planJSON sql.NullString
	var duration sql.NullInt64

	err := sc.Scan(&idStr, &sessionDate, &team, &title, &duration, &focus, &planJSON, &createdAt)
	if err != nil {
		return nil, err
	}

	s.ID, _ = uuid.Parse(idStr)
	s.Date, _ = time.Parse(dateFormat, sessionDate)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if team.Valid {
		s.Team = &team.String
	}
	if title.Valid {
		s.Title = &title.String
	}
	if focus.Valid {
		s.Focus = &focus.String
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		s.DurationMinutes = &minutes
	}
	if planJSON.Valid && planJSON.String != "" {
		if err := json.Unmarshal([]byte(planJSON.String), &s.Plan); err != nil {
			return nil, fmt.Errorf("unmarshal plan: %w", err)
		}
	}

	return &s, nil
}

func scanSession(row *sql.Row) (*models.Session, error) {
	s, err := scanSessionFrom(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}

func scanSessionRows(rows *sql.Rows) (*models.Session, error) {
	s, err := scanSessionFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}

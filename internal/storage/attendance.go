// ABOUTME: Attendance upsert and joined queries for SQLite storage.
// ABOUTME: Upsert on (session_id, player_id) is the only write path for attendance.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtlog/internal/models"
)

// UpsertAttendance inserts an attendance record, or on conflict of the
// (session_id, player_id) natural key overwrites present/intensity/mood/memo.
// Identity and creation time of the original row are preserved.
func (d *DB) UpsertAttendance(a *models.Attendance) error {
	query := `
		INSERT INTO attendance (id, session_id, player_id, present, intensity, mood, memo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, player_id) DO UPDATE SET
			present = excluded.present,
			intensity = excluded.intensity,
			mood = excluded.mood,
			memo = excluded.memo
	`
	_, err := d.db.Exec(query,
		a.ID.String(),
		a.SessionID.String(),
		a.PlayerID.String(),
		a.Present,
		a.Intensity,
		a.Mood,
		a.Memo,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

// ListSessionAttendance returns joined attendance rows for one session,
// ordered by player name.
func (d *DB) ListSessionAttendance(sessionID uuid.UUID) ([]*AttendanceRow, error) {
	query := `
		SELECT s.session_date, s.team, s.title, s.focus,
		       COALESCE(p.name, ''), a.present, a.intensity, a.mood, a.memo
		FROM attendance a
		LEFT JOIN players p ON p.id = a.player_id
		JOIN sessions s ON s.id = a.session_id
		WHERE a.session_id = ?
		ORDER BY p.name ASC
	`
	rows, err := d.db.Query(query, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("list session attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListAttendanceBetween returns joined attendance rows for sessions dated in
// [start, end] inclusive, most recent session first.
func (d *DB) ListAttendanceBetween(start, end time.Time) ([]*AttendanceRow, error) {
	query := `
		SELECT s.session_date, s.team, s.title, s.focus,
		       COALESCE(p.name, ''), a.present, a.intensity, a.mood, a.memo
		FROM attendance a
		LEFT JOIN players p ON p.id = a.player_id
		JOIN sessions s ON s.id = a.session_id
		WHERE s.session_date BETWEEN ? AND ?
		ORDER BY s.session_date DESC, a.created_at DESC
	`
	rows, err := d.db.Query(query, start.Format(dateFormat), end.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows *sql.Rows) ([]*AttendanceRow, error) {
	var result []*AttendanceRow
	for rows.Next() {
		var r AttendanceRow
		var sessionDate string
		var team, title, focus, memo sql.NullString
		var present int

		err := rows.Scan(&sessionDate, &team, &title, &focus, &r.Player, &present, &r.Intensity, &r.Mood, &memo)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}

		r.SessionDate, _ = time.Parse(dateFormat, sessionDate)
		r.Present = present != 0
		if team.Valid {
			r.Team = &team.String
		}
		if title.Valid {
			r.Title = &title.String
		}
		if focus.Valid {
			r.Focus = &focus.String
		}
		if memo.Valid {
			r.Memo = &memo.String
		}
		result = append(result, &r)
	}
	return result, rows.Err()
}

// listAllAttendance returns raw attendance records for export.
func (d *DB) listAllAttendance() ([]*models.Attendance, error) {
	query := `
		SELECT id, session_id, player_id, present, intensity, mood, memo, created_at
		FROM attendance
		ORDER BY created_at DESC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list all attendance: %w", err)
	}
	defer rows.Close()

	var result []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		var idStr, sessionID, playerID, createdAt string
		var memo sql.NullString
		var present int

		err := rows.Scan(&idStr, &sessionID, &playerID, &present, &a.Intensity, &a.Mood, &memo, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}

		a.ID, _ = uuid.Parse(idStr)
		a.SessionID, _ = uuid.Parse(sessionID)
		a.PlayerID, _ = uuid.Parse(playerID)
		a.Present = present != 0
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if memo.Valid {
			a.Memo = &memo.String
		}
		result = append(result, &a)
	}
	return result, rows.Err()
}

// ABOUTME: Video note operations for SQLite storage.
// ABOUTME: Append-only writes plus filtered and date-windowed listings.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtlog/internal/models"
)

// CreateNote stores a new video note.
func (d *DB) CreateNote(n *models.VideoNote) error {
	query := `
		INSERT INTO video_notes (id, note_date, game, team, segment, clock, category, players, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		n.ID.String(),
		n.Date.Format(dateFormat),
		n.Game,
		n.Team,
		n.Segment,
		n.Clock,
		string(n.Category),
		n.Players,
		n.Text,
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// ListNotes retrieves video notes matching the filter, most recent first.
func (d *DB) ListNotes(filter NoteFilter) ([]*models.VideoNote, error) {
	query := `
		SELECT id, note_date, game, team, segment, clock, category, players, note, created_at
		FROM video_notes
		WHERE 1=1
	`
	var args []interface{}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, string(filter.Category))
	}
	if filter.Team != "" {
		query += " AND team LIKE ?"
		args = append(args, "%"+filter.Team+"%")
	}
	if filter.Keyword != "" {
		query += " AND (note LIKE ? OR players LIKE ? OR game LIKE ? OR clock LIKE ?)"
		kw := "%" + filter.Keyword + "%"
		args = append(args, kw, kw, kw, kw)
	}

	query += " ORDER BY note_date DESC, created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// ListNotesBetween retrieves video notes dated in [start, end] inclusive,
// most recent first.
func (d *DB) ListNotesBetween(start, end time.Time) ([]*models.VideoNote, error) {
	query := `
		SELECT id, note_date, game, team, segment, clock, category, players, note, created_at
		FROM video_notes
		WHERE note_date BETWEEN ? AND ?
		ORDER BY note_date DESC, created_at DESC
	`
	rows, err := d.db.Query(query, start.Format(dateFormat), end.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]*models.VideoNote, error) {
	var notes []*models.VideoNote
	for rows.Next() {
		var n models.VideoNote
		var idStr, noteDate, category, createdAt string
		var game, team, segment, clock, players sql.NullString

		err := rows.Scan(&idStr, &noteDate, &game, &team, &segment, &clock, &category, &players, &n.Text, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}

		n.ID, _ = uuid.Parse(idStr)
		n.Date, _ = time.Parse(dateFormat, noteDate)
		n.Category = models.NoteCategory(category)
		n.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if game.Valid {
			n.Game = &game.String
		}
		if team.Valid {
			n.Team = &team.String
		}
		if segment.Valid {
			n.Segment = &segment.String
		}
		if clock.Valid {
			n.Clock = &clock.String
		}
		if players.Valid {
			n.Players = &players.String
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}

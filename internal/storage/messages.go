// ABOUTME: Parent/player message operations for SQLite storage.
// ABOUTME: Append-only; listed most recent first.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtlog/internal/models"
)

// CreateMessage stores a new consultation message.
func (d *DB) CreateMessage(m *models.Message) error {
	query := `
		INSERT INTO parent_msgs (id, msg_date, player, from_who, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Date.Format(dateFormat),
		m.Player,
		string(m.From),
		m.Text,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// ListMessages retrieves recent messages, most recent first.
func (d *DB) ListMessages(limit int) ([]*models.Message, error) {
	query := `
		SELECT id, msg_date, player, from_who, message, created_at
		FROM parent_msgs
		ORDER BY msg_date DESC, created_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		var idStr, msgDate, createdAt string
		var from sql.NullString

		if err := rows.Scan(&idStr, &msgDate, &m.Player, &from, &m.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.Date, _ = time.Parse(dateFormat, msgDate)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if from.Valid {
			m.From = models.SenderRole(from.String)
		}
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}

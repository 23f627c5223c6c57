// ABOUTME: Player CRUD operations for SQLite storage.
// ABOUTME: Deletes are hard and do not cascade into dependent tables.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"courtlog/internal/models"
)

const dateFormat = "2006-01-02"

// CreatePlayer stores a new player in the database.
func (d *DB) CreatePlayer(p *models.Player) error {
	query := `
		INSERT INTO players (id, name, level, position, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		p.ID.String(),
		p.Name,
		p.Level,
		p.Position,
		p.Notes,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

// GetPlayer retrieves a player by ID or ID prefix.
func (d *DB) GetPlayer(idOrPrefix string) (*models.Player, error) {
	id, err := d.resolveID("players", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, level, position, notes, created_at
		FROM players
		WHERE id = ?
	`
	row := d.db.QueryRow(query, id)

	var p models.Player
	var idStr, createdAt string
	var level, position, notes sql.NullString

	if err := row.Scan(&idStr, &p.Name, &level, &position, &notes, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found: %s", idOrPrefix)
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}

	p.ID, _ = uuid.Parse(idStr)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if level.Valid {
		p.Level = &level.String
	}
	if position.Valid {
		p.Position = &position.String
	}
	if notes.Valid {
		p.Notes = &notes.String
	}

	return &p, nil
}

// ListPlayers retrieves all players ordered by name.
func (d *DB) ListPlayers() ([]*models.Player, error) {
	query := `
		SELECT id, name, level, position, notes, created_at
		FROM players
		ORDER BY name ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		var p models.Player
		var idStr, createdAt string
		var level, position, notes sql.NullString

		if err := rows.Scan(&idStr, &p.Name, &level, &position, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}

		p.ID, _ = uuid.Parse(idStr)
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if level.Valid {
			p.Level = &level.String
		}
		if position.Valid {
			p.Position = &position.String
		}
		if notes.Valid {
			p.Notes = &notes.String
		}
		players = append(players, &p)
	}

	return players, rows.Err()
}

// DeletePlayer removes a player by ID or prefix. Dependent attendance rows
// are left in place; downstream joins surface them with an empty player name.
func (d *DB) DeletePlayer(idOrPrefix string) error {
	id, err := d.resolveID("players", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// resolveID finds the full ID from a prefix in the given table.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%'`, table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan id: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

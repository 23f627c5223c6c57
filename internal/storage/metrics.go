// ABOUTME: Metric operations for SQLite storage.
// ABOUTME: Stored percent/grade are written once and read back verbatim.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtlog/internal/models"
)

// CreateMetric stores a new metric with its frozen derived fields.
func (d *DB) CreateMetric(m *models.Metric) error {
	query := `
		INSERT INTO metrics (id, metric_date, metric_type, player, made, attempt, percent, grade, memo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	var grade *string
	if m.Grade != nil {
		g := string(*m.Grade)
		grade = &g
	}
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Date.Format(dateFormat),
		string(m.MetricType),
		m.Player,
		m.Made,
		m.Attempt,
		m.Percent,
		grade,
		m.Memo,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create metric: %w", err)
	}
	return nil
}

// ListMetrics retrieves recent metrics, most recent first.
func (d *DB) ListMetrics(limit int) ([]*models.Metric, error) {
	query := `
		SELECT id, metric_date, metric_type, player, made, attempt, percent, grade, memo, created_at
		FROM metrics
		ORDER BY metric_date DESC, created_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	return scanMetrics(rows)
}

// ListMetricsBetween retrieves metrics dated in [start, end] inclusive,
// most recent first.
func (d *DB) ListMetricsBetween(start, end time.Time) ([]*models.Metric, error) {
	query := `
		SELECT id, metric_date, metric_type, player, made, attempt, percent, grade, memo, created_at
		FROM metrics
		WHERE metric_date BETWEEN ? AND ?
		ORDER BY metric_date DESC, created_at DESC
	`
	rows, err := d.db.Query(query, start.Format(dateFormat), end.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	return scanMetrics(rows)
}

// MetricAverages computes the mean stored percent per (metric type, player)
// over the most recent records, skipping rows with no percent.
func (d *DB) MetricAverages(recent int) ([]*MetricAverage, error) {
	if recent <= 0 {
		recent = 30
	}
	query := `
		SELECT metric_type, player, AVG(percent), COUNT(*)
		FROM (
			SELECT metric_type, player, percent
			FROM metrics
			WHERE percent IS NOT NULL
			ORDER BY metric_date DESC, created_at DESC
			LIMIT ?
		)
		GROUP BY metric_type, player
		ORDER BY metric_type ASC, AVG(percent) DESC
	`
	rows, err := d.db.Query(query, recent)
	if err != nil {
		return nil, fmt.Errorf("metric averages: %w", err)
	}
	defer rows.Close()

	var result []*MetricAverage
	for rows.Next() {
		var a MetricAverage
		var metricType string
		if err := rows.Scan(&metricType, &a.Player, &a.AvgPercent, &a.Count); err != nil {
			return nil, fmt.Errorf("scan average: %w", err)
		}
		a.MetricType = models.MetricType(metricType)
		result = append(result, &a)
	}
	return result, rows.Err()
}

func scanMetrics(rows *sql.Rows) ([]*models.Metric, error) {
	var metrics []*models.Metric
	for rows.Next() {
		var m models.Metric
		var idStr, metricDate, metricType, createdAt string
		var percent sql.NullFloat64
		var grade, memo sql.NullString

		err := rows.Scan(&idStr, &metricDate, &metricType, &m.Player, &m.Made, &m.Attempt, &percent, &grade, &memo, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.Date, _ = time.Parse(dateFormat, metricDate)
		m.MetricType = models.MetricType(metricType)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if percent.Valid {
			m.Percent = &percent.Float64
		}
		if grade.Valid {
			g := models.Grade(grade.String)
			m.Grade = &g
		}
		if memo.Valid {
			m.Memo = &memo.String
		}
		metrics = append(metrics, &m)
	}
	return metrics, rows.Err()
}

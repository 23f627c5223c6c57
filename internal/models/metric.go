// ABOUTME: Metric model for ratio-based performance records.
// ABOUTME: Percent and grade are frozen at write time, never recomputed on read.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MetricType labels what a metric measures.
type MetricType string

const (
	MetricReboundRate    MetricType = "rebound_rate"
	MetricShootingPct    MetricType = "shooting_pct"
	MetricFilmEngagement MetricType = "film_engagement"
	MetricOther          MetricType = "other"
)

// AllMetricTypes returns all valid metric types.
var AllMetricTypes = []MetricType{
	MetricReboundRate, MetricShootingPct, MetricFilmEngagement, MetricOther,
}

// IsValidMetricType checks if a string is a valid metric type.
func IsValidMetricType(s string) bool {
	for _, mt := range AllMetricTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Metric records made/attempt counts for a player on a date.
// When Attempt > 0, Percent and Grade are derived once at construction and
// stored as historical facts. When Attempt is 0 both are nil, not zero/F.
type Metric struct {
	ID         uuid.UUID
	Date       time.Time
	MetricType MetricType
	Player     string
	Made       int
	Attempt    int
	Percent    *float64
	Grade      *Grade
	Memo       *string
	CreatedAt  time.Time
}

// NewMetric creates a metric and freezes its derived percent and grade.
func NewMetric(date time.Time, metricType MetricType, player string, made, attempt int, scheme Scheme) *Metric {
	m := &Metric{
		ID:         uuid.New(),
		Date:       date,
		MetricType: metricType,
		Player:     player,
		Made:       made,
		Attempt:    attempt,
		CreatedAt:  time.Now(),
	}
	if attempt > 0 {
		pct := RatioPercent(made, attempt)
		grade := GradeFor(pct, scheme)
		m.Percent = &pct
		m.Grade = &grade
	}
	return m
}

// WithMemo sets the memo.
func (m *Metric) WithMemo(memo string) *Metric {
	m.Memo = &memo
	return m
}

// RatioPercent returns made/attempt as a percentage rounded to one decimal.
func RatioPercent(made, attempt int) float64 {
	return math.Round(float64(made)/float64(attempt)*1000) / 10
}

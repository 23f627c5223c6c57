// ABOUTME: Tests for report aggregation over a SQLite store.
// ABOUTME: Covers windowing, player filters, tail caps, and empty outcomes.
package report

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"courtlog/internal/models"
	"courtlog/internal/storage"
)

func setupRepo(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestBuildEndToEnd(t *testing.T) {
	db := setupRepo(t)

	// Insert Subject "A", Session "S1" dated 2024-01-01 duration 80.
	a := models.NewPlayer("A")
	if err := db.CreatePlayer(a); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	s1 := models.NewSession(date("2024-01-01")).WithTitle("S1").WithDuration(80)
	if err := db.CreateSession(s1); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	// Attendance (S1, A), then re-submit with intensity 9.
	if err := db.UpsertAttendance(models.NewAttendance(s1.ID, a.ID, true, 7, 8)); err != nil {
		t.Fatalf("UpsertAttendance failed: %v", err)
	}
	if err := db.UpsertAttendance(models.NewAttendance(s1.ID, a.ID, true, 9, 8)); err != nil {
		t.Fatalf("UpsertAttendance (resubmit) failed: %v", err)
	}

	// Metric 34/40 on 2024-01-02.
	m := models.NewMetric(date("2024-01-02"), models.MetricReboundRate, "A", 34, 40, models.SchemePrimary)
	if err := db.CreateMetric(m); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}

	p, err := NewBuilder(db).Build(date("2024-01-01"), date("2024-01-03"), "A")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(p.Attendance) != 1 {
		t.Fatalf("attendance rows = %d, want 1", len(p.Attendance))
	}
	if p.Attendance[0].Intensity != 9 {
		t.Errorf("intensity = %d, want 9 (latest upsert)", p.Attendance[0].Intensity)
	}
	if len(p.Metrics) != 1 {
		t.Fatalf("metric rows = %d, want 1", len(p.Metrics))
	}
	if p.Metrics[0].Percent == nil || *p.Metrics[0].Percent != 85.0 {
		t.Errorf("percent = %v, want 85.0", p.Metrics[0].Percent)
	}
	if p.Metrics[0].Grade == nil || *p.Metrics[0].Grade != "A" {
		t.Errorf("grade = %v, want A", p.Metrics[0].Grade)
	}
	if len(p.Notes) != 0 {
		t.Errorf("note rows = %d, want 0", len(p.Notes))
	}
	if p.Period.Start != "2024-01-01" || p.Period.End != "2024-01-03" {
		t.Errorf("period = %+v", p.Period)
	}
}

func TestBuildPlayerFilters(t *testing.T) {
	db := setupRepo(t)

	a := models.NewPlayer("A")
	b := models.NewPlayer("B")
	s := models.NewSession(date("2024-01-01"))
	for _, p := range []*models.Player{a, b} {
		if err := db.CreatePlayer(p); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
	}
	if err := db.CreateSession(s); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := db.UpsertAttendance(models.NewAttendance(s.ID, a.ID, true, 7, 7)); err != nil {
		t.Fatalf("UpsertAttendance failed: %v", err)
	}
	if err := db.UpsertAttendance(models.NewAttendance(s.ID, b.ID, true, 5, 5)); err != nil {
		t.Fatalf("UpsertAttendance failed: %v", err)
	}

	// Note mentioning A among others: substring containment applies.
	n := models.NewVideoNote(date("2024-01-02"), models.CategoryBoxOut, "good seal").WithPlayers("A, B")
	if err := db.CreateNote(n); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	n2 := models.NewVideoNote(date("2024-01-02"), models.CategoryDefense, "closeouts").WithPlayers("B")
	if err := db.CreateNote(n2); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	for _, m := range []*models.Metric{
		models.NewMetric(date("2024-01-02"), models.MetricReboundRate, "A", 8, 10, models.SchemePrimary),
		models.NewMetric(date("2024-01-02"), models.MetricReboundRate, "B", 6, 10, models.SchemePrimary),
	} {
		if err := db.CreateMetric(m); err != nil {
			t.Fatalf("CreateMetric failed: %v", err)
		}
	}

	filtered, err := NewBuilder(db).Build(date("2024-01-01"), date("2024-01-03"), "A")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(filtered.Attendance) != 1 || filtered.Attendance[0].Player != "A" {
		t.Errorf("attendance filter: %+v", filtered.Attendance)
	}
	if len(filtered.Notes) != 1 {
		t.Errorf("note filter returned %d notes, want 1", len(filtered.Notes))
	}
	if len(filtered.Metrics) != 1 || filtered.Metrics[0].Player != "A" {
		t.Errorf("metric filter: %+v", filtered.Metrics)
	}

	unfiltered, err := NewBuilder(db).Build(date("2024-01-01"), date("2024-01-03"), "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(unfiltered.Attendance) != 2 || len(unfiltered.Notes) != 2 || len(unfiltered.Metrics) != 2 {
		t.Errorf("unfiltered streams: %d/%d/%d, want 2/2/2",
			len(unfiltered.Attendance), len(unfiltered.Notes), len(unfiltered.Metrics))
	}
}

func TestBuildUnknownPlayerYieldsEmptyStreams(t *testing.T) {
	db := setupRepo(t)

	p, err := NewBuilder(db).Build(date("2024-01-01"), date("2024-01-07"), "nobody")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if p.Attendance == nil || p.Notes == nil || p.Metrics == nil {
		t.Fatal("streams must be empty slices, never nil")
	}
	if len(p.Attendance) != 0 || len(p.Notes) != 0 || len(p.Metrics) != 0 {
		t.Errorf("expected all-empty streams, got %d/%d/%d",
			len(p.Attendance), len(p.Notes), len(p.Metrics))
	}
}

func TestBuildWindowExcludesOutsideDates(t *testing.T) {
	db := setupRepo(t)

	inside := models.NewMetric(date("2024-01-02"), models.MetricReboundRate, "A", 8, 10, models.SchemePrimary)
	outside := models.NewMetric(date("2024-02-01"), models.MetricReboundRate, "A", 9, 10, models.SchemePrimary)
	for _, m := range []*models.Metric{inside, outside} {
		if err := db.CreateMetric(m); err != nil {
			t.Fatalf("CreateMetric failed: %v", err)
		}
	}

	p, err := NewBuilder(db).Build(date("2024-01-01"), date("2024-01-07"), "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(p.Metrics) != 1 || p.Metrics[0].Date != "2024-01-02" {
		t.Errorf("window leaked: %+v", p.Metrics)
	}
}

func TestBuildTailCapsStreams(t *testing.T) {
	db := setupRepo(t)

	for i := 0; i < 60; i++ {
		m := models.NewMetric(date("2024-01-15"), models.MetricReboundRate, "A", i%10, 10, models.SchemePrimary)
		m.Memo = nil
		if err := db.CreateMetric(m); err != nil {
			t.Fatalf("CreateMetric %d failed: %v", i, err)
		}
	}

	p, err := NewBuilder(db).Build(date("2024-01-01"), date("2024-01-31"), "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(p.Metrics) != 50 {
		t.Errorf("metric stream = %d rows, want cap of 50", len(p.Metrics))
	}
}

func TestBuildCapAppliesAfterFilter(t *testing.T) {
	db := setupRepo(t)

	// 55 metrics for A interleaved with 55 for B. Capping before filtering
	// would starve A; capping after must keep 50 A rows.
	for i := 0; i < 55; i++ {
		day := fmt.Sprintf("2024-01-%02d", (i%28)+1)
		for _, player := range []string{"A", "B"} {
			m := models.NewMetric(date(day), models.MetricReboundRate, player, 5, 10, models.SchemePrimary)
			if err := db.CreateMetric(m); err != nil {
				t.Fatalf("CreateMetric failed: %v", err)
			}
		}
	}

	p, err := NewBuilder(db).Build(date("2024-01-01"), date("2024-01-31"), "A")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(p.Metrics) != 50 {
		t.Fatalf("filtered metric stream = %d rows, want 50", len(p.Metrics))
	}
	for _, m := range p.Metrics {
		if m.Player != "A" {
			t.Fatalf("foreign player leaked through filter: %q", m.Player)
		}
	}
}

// ABOUTME: Tests for export/import and CSV serialization.
// ABOUTME: Verifies BOM, empty placeholder, and full JSON round-trip.
package storage

import (
	"bytes"
	"strings"
	"testing"

	"courtlog/internal/models"
)

func TestCSVAttendanceBOMAndContent(t *testing.T) {
	memo := "good box outs"
	team := "Samsung"
	rows := []*AttendanceRow{
		{
			SessionDate: date("2024-01-01"),
			Team:        &team,
			Player:      "A",
			Present:     true,
			Intensity:   7,
			Mood:        8,
			Memo:        &memo,
		},
	}

	data, err := CSVAttendance(rows)
	if err != nil {
		t.Fatalf("CSVAttendance failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("expected UTF-8 BOM prefix")
	}
	text := string(data)
	if !strings.Contains(text, "session_date,team,title,focus,player,present,intensity,mood,memo") {
		t.Errorf("missing header: %s", text)
	}
	if !strings.Contains(text, "2024-01-01,Samsung,,,A,true,7,8,good box outs") {
		t.Errorf("missing row: %s", text)
	}
}

func TestCSVEmptyStreamsYieldPlaceholder(t *testing.T) {
	att, err := CSVAttendance(nil)
	if err != nil {
		t.Fatalf("CSVAttendance failed: %v", err)
	}
	if string(att) != "empty" {
		t.Errorf("attendance placeholder = %q", att)
	}

	notes, err := CSVNotes(nil)
	if err != nil {
		t.Fatalf("CSVNotes failed: %v", err)
	}
	if string(notes) != "empty" {
		t.Errorf("notes placeholder = %q", notes)
	}

	metrics, err := CSVMetrics(nil)
	if err != nil {
		t.Fatalf("CSVMetrics failed: %v", err)
	}
	if string(metrics) != "empty" {
		t.Errorf("metrics placeholder = %q", metrics)
	}
}

func TestCSVMetricsAbsentDerivedFields(t *testing.T) {
	m := models.NewMetric(date("2024-01-03"), models.MetricShootingPct, "A", 0, 0, models.SchemePrimary)

	data, err := CSVMetrics([]*models.Metric{m})
	if err != nil {
		t.Fatalf("CSVMetrics failed: %v", err)
	}
	if !strings.Contains(string(data), "2024-01-03,shooting_pct,A,0,0,,,") {
		t.Errorf("expected empty percent/grade cells: %s", data)
	}
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	p := models.NewPlayer("A")
	s := models.NewSession(date("2024-01-01")).WithDuration(80).AddPlanItem("warmup", 10, models.IntensityLow)
	if err := db.CreatePlayer(p); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	if err := db.CreateSession(s); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := db.UpsertAttendance(models.NewAttendance(s.ID, p.ID, true, 7, 8)); err != nil {
		t.Fatalf("UpsertAttendance failed: %v", err)
	}
	if err := db.CreateMetric(models.NewMetric(date("2024-01-02"), models.MetricReboundRate, "A", 34, 40, models.SchemePrimary)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	fresh := setupTestDB(t)
	defer fresh.Close()
	if err := fresh.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	all, err := fresh.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if len(all.Players) != 1 || len(all.Sessions) != 1 || len(all.Attendance) != 1 || len(all.Metrics) != 1 {
		t.Errorf("round trip lost records: %d players, %d sessions, %d attendance, %d metrics",
			len(all.Players), len(all.Sessions), len(all.Attendance), len(all.Metrics))
	}
	if all.Metrics[0].Percent == nil || *all.Metrics[0].Percent != 85.0 {
		t.Errorf("frozen percent lost in round trip: %v", all.Metrics[0].Percent)
	}
}

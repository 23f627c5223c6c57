// ABOUTME: Integration tests for courtlog CLI.
// ABOUTME: Builds the binary and exercises the full record-keeping workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var idPattern = regexp.MustCompile(`[0-9a-f]{8}`)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "courtlog-test")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/courtlog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use a temp data directory via environment
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(),
			"COURTLOG_DATA_DIR="+tmpDir,
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"NO_COLOR=1",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Add a player
	output, err := run("player", "add", "Jiho", "--level", "6th", "--position", "G")
	if err != nil {
		t.Fatalf("Failed to add player: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added Jiho") {
		t.Errorf("Expected 'Added Jiho' in output, got: %s", output)
	}
	playerID := idPattern.FindString(output)
	if playerID == "" {
		t.Fatalf("No player ID in output: %s", output)
	}

	// Add a session with a plan
	output, err = run("session", "add",
		"--date", "2025-06-10",
		"--team", "U12",
		"--drill", "warmup:10:Low",
		"--drill", "box out drill:25:High")
	if err != nil {
		t.Fatalf("Failed to add session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2 drills, 35 planned minutes") {
		t.Errorf("Expected plan summary in output, got: %s", output)
	}
	sessionID := idPattern.FindString(output)
	if sessionID == "" {
		t.Fatalf("No session ID in output: %s", output)
	}

	// Log attendance twice for the same pair; second write overwrites
	output, err = run("attendance", "log", sessionID, playerID, "--intensity", "7", "--mood", "8")
	if err != nil {
		t.Fatalf("Failed to log attendance: %v\n%s", err, output)
	}
	output, err = run("attendance", "log", sessionID, playerID, "--absent", "--memo", "sick")
	if err != nil {
		t.Fatalf("Failed to re-log attendance: %v\n%s", err, output)
	}

	output, err = run("attendance", "list", sessionID)
	if err != nil {
		t.Fatalf("Failed to list attendance: %v\n%s", err, output)
	}
	if strings.Count(output, "Jiho") != 1 {
		t.Errorf("Expected exactly one attendance row, got: %s", output)
	}
	if !strings.Contains(output, "absent") {
		t.Errorf("Expected re-logged row to be absent, got: %s", output)
	}

	// Add a video note
	output, err = run("note", "add", "box_out", "late box out weak side",
		"--date", "2025-06-10", "--players", "Jiho", "--clock", "09:50")
	if err != nil {
		t.Fatalf("Failed to add note: %v\n%s", err, output)
	}

	// Add a graded metric
	output, err = run("metric", "add", "rebound_rate", "Jiho", "34", "40", "--date", "2025-06-10")
	if err != nil {
		t.Fatalf("Failed to add metric: %v\n%s", err, output)
	}
	if !strings.Contains(output, "85.0%") || !strings.Contains(output, "grade A") {
		t.Errorf("Expected frozen grade in output, got: %s", output)
	}

	// Build a report over the window
	output, err = run("report", "--from", "2025-06-01", "--to", "2025-06-30", "--player", "Jiho")
	if err != nil {
		t.Fatalf("Failed to build report: %v\n%s", err, output)
	}
	if !strings.Contains(output, "attendance 1  notes 1  metrics 1") {
		t.Errorf("Expected stream counts in output, got: %s", output)
	}
	if !strings.Contains(output, "late box out weak side") {
		t.Errorf("Expected note text in payload, got: %s", output)
	}

	// Unknown player yields an empty report, not an error
	output, err = run("report", "--from", "2025-06-01", "--to", "2025-06-30", "--player", "Nobody")
	if err != nil {
		t.Fatalf("Report for unknown player should not fail: %v\n%s", err, output)
	}
	if !strings.Contains(output, "attendance 0  notes 0  metrics 0") {
		t.Errorf("Expected empty streams for unknown player, got: %s", output)
	}

	// CSV export carries the UTF-8 BOM
	csvPath := filepath.Join(tmpDir, "metrics.csv")
	output, err = run("export", "metrics", "--from", "2025-06-01", "--to", "2025-06-30", "-o", csvPath)
	if err != nil {
		t.Fatalf("Failed to export metrics: %v\n%s", err, output)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("Failed to read exported CSV: %v", err)
	}
	if len(data) < 3 || data[0] != 0xEF || data[1] != 0xBB || data[2] != 0xBF {
		t.Error("Expected CSV to start with UTF-8 BOM")
	}
	if !strings.Contains(string(data), "rebound_rate") {
		t.Errorf("Expected metric row in CSV, got: %s", data)
	}

	// Empty CSV window yields the placeholder
	emptyPath := filepath.Join(tmpDir, "empty.csv")
	_, err = run("export", "notes", "--from", "2020-01-01", "--to", "2020-01-31", "-o", emptyPath)
	if err != nil {
		t.Fatalf("Failed to export empty window: %v", err)
	}
	data, _ = os.ReadFile(emptyPath)
	if string(data) != "empty" {
		t.Errorf("Expected placeholder for empty window, got: %q", data)
	}

	// JSON backup
	backupPath := filepath.Join(tmpDir, "backup.json")
	_, err = run("export", "json", "-o", backupPath)
	if err != nil {
		t.Fatalf("Failed to export JSON: %v", err)
	}

	// Habit check-in and history
	output, err = run("habit", "checkin", "--done", "4", "--mood", "8")
	if err != nil {
		t.Fatalf("Failed to check in: %v\n%s", err, output)
	}
	if !strings.Contains(output, "4/5 done (80%)") {
		t.Errorf("Expected completion rate in output, got: %s", output)
	}

	output, err = run("habit", "history")
	if err != nil {
		t.Fatalf("Failed to show history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "80%") {
		t.Errorf("Expected today's rate in history, got: %s", output)
	}
}

// ABOUTME: MCP tool implementations for the coaching log.
// ABOUTME: Exposes roster, session, attendance, note, metric, message, and report tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"courtlog/internal/models"
)

func (s *Server) registerTools() {
	// add_player
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_player",
		Description: "Add a player to the roster",
	}, s.handleAddPlayer)

	// list_players
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_players",
		Description: "List all players on the roster",
	}, s.handleListPlayers)

	// add_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_session",
		Description: "Create a training session with an optional drill plan",
	}, s.handleAddSession)

	// log_attendance
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_attendance",
		Description: "Record attendance for a player at a session (re-submitting overwrites)",
	}, s.handleLogAttendance)

	// add_note
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_note",
		Description: "Add a timestamped video/game analysis note",
	}, s.handleAddNote)

	// add_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_metric",
		Description: "Record a made/attempt performance metric for a player",
	}, s.handleAddMetric)

	// add_message
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_message",
		Description: "Record a parent/player consultation message",
	}, s.handleAddMessage)

	// build_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "build_report",
		Description: "Aggregate attendance, notes, and metrics over a date window",
	}, s.handleBuildReport)
}

// Tool input/output types

type addPlayerInput struct {
	Name     string `json:"name" jsonschema:"Player name"`
	Level    string `json:"level,omitempty" jsonschema:"Grade/level label (e.g. 6th, adult)"`
	Position string `json:"position,omitempty" jsonschema:"Position (G, F, C, G/F, F/C)"`
	Notes    string `json:"notes,omitempty" jsonschema:"Free-text notes"`
}

type playerOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type addSessionInput struct {
	Date            string      `json:"date,omitempty" jsonschema:"Session date (YYYY-MM-DD), defaults to today"`
	Team            string      `json:"team,omitempty" jsonschema:"Team or class label"`
	Title           string      `json:"title,omitempty" jsonschema:"Session title"`
	DurationMinutes int         `json:"duration_minutes,omitempty" jsonschema:"Total duration in minutes"`
	Focus           string      `json:"focus,omitempty" jsonschema:"One-line focus for the session"`
	Plan            []planEntry `json:"plan,omitempty" jsonschema:"Ordered drill plan"`
}

type planEntry struct {
	Activity  string `json:"activity" jsonschema:"Drill name"`
	Minutes   int    `json:"minutes" jsonschema:"Minutes allotted"`
	Intensity string `json:"intensity,omitempty" jsonschema:"Low, Mid, or High (default Mid)"`
}

type sessionOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type logAttendanceInput struct {
	SessionID string `json:"session_id" jsonschema:"Session ID or prefix"`
	PlayerID  string `json:"player_id" jsonschema:"Player ID or prefix"`
	Present   bool   `json:"present" jsonschema:"Whether the player attended"`
	Intensity int    `json:"intensity,omitempty" jsonschema:"Effort 1-10 (default 5)"`
	Mood      int    `json:"mood,omitempty" jsonschema:"Mood 1-10 (default 5)"`
	Memo      string `json:"memo,omitempty" jsonschema:"Optional memo"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addNoteInput struct {
	Date     string `json:"date,omitempty" jsonschema:"Note date (YYYY-MM-DD), defaults to today"`
	Game     string `json:"game,omitempty" jsonschema:"Game or video label"`
	Team     string `json:"team,omitempty" jsonschema:"Team label"`
	Segment  string `json:"segment,omitempty" jsonschema:"Quarter or section label (e.g. 3Q)"`
	Clock    string `json:"clock,omitempty" jsonschema:"Free-text timestamp label (e.g. 09:50)"`
	Category string `json:"category" jsonschema:"Category (rebound, box_out, defense, offense, transition, turnover, other)"`
	Players  string `json:"players,omitempty" jsonschema:"Comma-joined player names"`
	Text     string `json:"text" jsonschema:"The observation"`
}

type addMetricInput struct {
	Date       string `json:"date,omitempty" jsonschema:"Metric date (YYYY-MM-DD), defaults to today"`
	MetricType string `json:"metric_type" jsonschema:"Type of metric (rebound_rate, shooting_pct, film_engagement, other)"`
	Player     string `json:"player" jsonschema:"Player name"`
	Made       int    `json:"made" jsonschema:"Successful count"`
	Attempt    int    `json:"attempt" jsonschema:"Attempt count (0 means unevaluated)"`
	Scheme     string `json:"scheme,omitempty" jsonschema:"Grading scheme (primary or alternate, default primary)"`
	Memo       string `json:"memo,omitempty" jsonschema:"Optional memo"`
}

type metricOutput struct {
	ID      string   `json:"id"`
	Player  string   `json:"player"`
	Percent *float64 `json:"percent,omitempty"`
	Grade   *string  `json:"grade,omitempty"`
	Message string   `json:"message"`
}

type addMessageInput struct {
	Date   string `json:"date,omitempty" jsonschema:"Message date (YYYY-MM-DD), defaults to today"`
	Player string `json:"player" jsonschema:"Player name"`
	From   string `json:"from" jsonschema:"Sender role (parent, player, coach, other)"`
	Text   string `json:"text" jsonschema:"The message"`
}

type buildReportInput struct {
	Start  string `json:"start,omitempty" jsonschema:"Window start (YYYY-MM-DD), defaults to 30 days ago"`
	End    string `json:"end,omitempty" jsonschema:"Window end (YYYY-MM-DD), defaults to today"`
	Player string `json:"player,omitempty" jsonschema:"Filter to one player by name"`
}

// Tool handlers

func (s *Server) handleAddPlayer(ctx context.Context, req *mcp.CallToolRequest, input addPlayerInput) (*mcp.CallToolResult, playerOutput, error) {
	if input.Name == "" {
		return nil, playerOutput{}, fmt.Errorf("player name is required")
	}

	p := models.NewPlayer(input.Name)
	if input.Level != "" {
		p.WithLevel(input.Level)
	}
	if input.Position != "" {
		p.WithPosition(input.Position)
	}
	if input.Notes != "" {
		p.WithNotes(input.Notes)
	}

	if err := s.repo.CreatePlayer(p); err != nil {
		return nil, playerOutput{}, fmt.Errorf("failed to create player: %w", err)
	}

	return nil, playerOutput{
		ID:      p.ID.String()[:8],
		Name:    p.Name,
		Message: fmt.Sprintf("Added player %s (ID: %s)", p.Name, p.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListPlayers(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	players, err := s.repo.ListPlayers()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list players: %w", err)
	}

	if len(players) == 0 {
		return nil, map[string]interface{}{"message": "No players on the roster."}, nil
	}

	return nil, players, nil
}

func (s *Server) handleAddSession(ctx context.Context, req *mcp.CallToolRequest, input addSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	date, err := parseDateOrToday(input.Date)
	if err != nil {
		return nil, sessionOutput{}, err
	}

	sess := models.NewSession(date)
	if input.Team != "" {
		sess.WithTeam(input.Team)
	}
	if input.Title != "" {
		sess.WithTitle(input.Title)
	}
	if input.DurationMinutes > 0 {
		sess.WithDuration(input.DurationMinutes)
	}
	if input.Focus != "" {
		sess.WithFocus(input.Focus)
	}

	for _, entry := range input.Plan {
		intensity := models.IntensityMid
		if entry.Intensity != "" {
			intensity, err = models.ParseIntensity(entry.Intensity)
			if err != nil {
				return nil, sessionOutput{}, err
			}
		}
		sess.AddPlanItem(entry.Activity, entry.Minutes, intensity)
	}

	if err := s.repo.CreateSession(sess); err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to create session: %w", err)
	}

	return nil, sessionOutput{
		ID:      sess.ID.String()[:8],
		Date:    sess.Date.Format("2006-01-02"),
		Message: fmt.Sprintf("Added session on %s with %d planned drills (ID: %s)", sess.Date.Format("2006-01-02"), len(sess.Plan), sess.ID.String()[:8]),
	}, nil
}

func (s *Server) handleLogAttendance(ctx context.Context, req *mcp.CallToolRequest, input logAttendanceInput) (*mcp.CallToolResult, simpleOutput, error) {
	sess, err := s.repo.GetSession(input.SessionID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("session not found: %s", input.SessionID)
	}
	player, err := s.repo.GetPlayer(input.PlayerID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("player not found: %s", input.PlayerID)
	}

	intensity := input.Intensity
	if intensity == 0 {
		intensity = 5
	}
	mood := input.Mood
	if mood == 0 {
		mood = 5
	}

	a := models.NewAttendance(sess.ID, player.ID, input.Present, intensity, mood)
	if input.Memo != "" {
		a.WithMemo(input.Memo)
	}

	if err := s.repo.UpsertAttendance(a); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	status := "absent"
	if input.Present {
		status = "present"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %s as %s for session on %s", player.Name, status, sess.Date.Format("2006-01-02")),
	}, nil
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest, input addNoteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidNoteCategory(input.Category) {
		return nil, simpleOutput{}, fmt.Errorf("unknown note category: %s", input.Category)
	}
	if input.Text == "" {
		return nil, simpleOutput{}, fmt.Errorf("note text is required")
	}

	date, err := parseDateOrToday(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	n := models.NewVideoNote(date, models.NoteCategory(input.Category), input.Text)
	if input.Game != "" {
		n.WithGame(input.Game)
	}
	if input.Team != "" {
		n.WithTeam(input.Team)
	}
	if input.Segment != "" {
		n.WithSegment(input.Segment)
	}
	if input.Clock != "" {
		n.WithClock(input.Clock)
	}
	if input.Players != "" {
		n.WithPlayers(input.Players)
	}

	if err := s.repo.CreateNote(n); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create note: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s note for %s (ID: %s)", input.Category, date.Format("2006-01-02"), n.ID.String()[:8]),
	}, nil
}

func (s *Server) handleAddMetric(ctx context.Context, req *mcp.CallToolRequest, input addMetricInput) (*mcp.CallToolResult, metricOutput, error) {
	if !models.IsValidMetricType(input.MetricType) {
		return nil, metricOutput{}, fmt.Errorf("unknown metric type: %s", input.MetricType)
	}
	if input.Player == "" {
		return nil, metricOutput{}, fmt.Errorf("player name is required")
	}
	if input.Made < 0 || input.Attempt < 0 || input.Made > input.Attempt {
		return nil, metricOutput{}, fmt.Errorf("invalid counts: made=%d attempt=%d", input.Made, input.Attempt)
	}

	date, err := parseDateOrToday(input.Date)
	if err != nil {
		return nil, metricOutput{}, err
	}

	scheme := models.SchemePrimary
	if input.Scheme != "" {
		if !models.IsValidScheme(input.Scheme) {
			return nil, metricOutput{}, fmt.Errorf("unknown grading scheme: %s", input.Scheme)
		}
		scheme = models.Scheme(input.Scheme)
	}

	m := models.NewMetric(date, models.MetricType(input.MetricType), input.Player, input.Made, input.Attempt, scheme)
	if input.Memo != "" {
		m.WithMemo(input.Memo)
	}

	if err := s.repo.CreateMetric(m); err != nil {
		return nil, metricOutput{}, fmt.Errorf("failed to create metric: %w", err)
	}

	msg := fmt.Sprintf("Added %s for %s: %d/%d", input.MetricType, input.Player, input.Made, input.Attempt)
	var grade *string
	if m.Grade != nil {
		g := string(*m.Grade)
		grade = &g
		msg = fmt.Sprintf("%s (%.1f%%, grade %s)", msg, *m.Percent, g)
	}

	return nil, metricOutput{
		ID:      m.ID.String()[:8],
		Player:  m.Player,
		Percent: m.Percent,
		Grade:   grade,
		Message: msg,
	}, nil
}

func (s *Server) handleAddMessage(ctx context.Context, req *mcp.CallToolRequest, input addMessageInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidSenderRole(input.From) {
		return nil, simpleOutput{}, fmt.Errorf("unknown sender role: %s", input.From)
	}
	if input.Player == "" || input.Text == "" {
		return nil, simpleOutput{}, fmt.Errorf("player and text are required")
	}

	date, err := parseDateOrToday(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	m := models.NewMessage(date, input.Player, models.SenderRole(input.From), input.Text)
	if err := s.repo.CreateMessage(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create message: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %s message about %s", input.From, input.Player),
	}, nil
}

func (s *Server) handleBuildReport(ctx context.Context, req *mcp.CallToolRequest, input buildReportInput) (*mcp.CallToolResult, any, error) {
	end := time.Now()
	if input.End != "" {
		t, err := time.Parse("2006-01-02", input.End)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end date: %s", input.End)
		}
		end = t
	}
	start := end.AddDate(0, 0, -30)
	if input.Start != "" {
		t, err := time.Parse("2006-01-02", input.Start)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start date: %s", input.Start)
		}
		start = t
	}

	payload, err := s.reports.Build(start, end, input.Player)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build report: %w", err)
	}

	return nil, payload, nil
}

func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

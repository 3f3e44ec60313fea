package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// isoLocalLayout matches timestamps written without a zone, which are read as UTC
const isoLocalLayout = "2006-01-02T15:04:05.999999999"

// GameStatus represents the lifecycle state of a logged game
type GameStatus string

const (
	// GameStatusStarted indicates the game is in progress
	GameStatusStarted GameStatus = "started"

	// GameStatusCompleted indicates one of the teams won
	GameStatusCompleted GameStatus = "completed"

	// GameStatusCancelled indicates the game ended without a winner
	GameStatusCancelled GameStatus = "cancelled"
)

// IsTerminal reports whether the status can no longer change
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusCompleted || s == GameStatusCancelled
}

// Outcome is how a game was resolved. The numeric values match the
// winner field written to the game log.
type Outcome int

const (
	// OutcomeCancelled ends the game without touching player stats
	OutcomeCancelled Outcome = 0

	// OutcomeTeam1Wins records a win for team 1
	OutcomeTeam1Wins Outcome = 1

	// OutcomeTeam2Wins records a win for team 2
	OutcomeTeam2Wins Outcome = 2
)

// IsValid reports whether o is one of the known outcomes
func (o Outcome) IsValid() bool {
	return o == OutcomeCancelled || o == OutcomeTeam1Wins || o == OutcomeTeam2Wins
}

// String returns a human readable form of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeTeam1Wins:
		return "Team 1"
	case OutcomeTeam2Wins:
		return "Team 2"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// LogPlayer is a participant as recorded in the game log
type LogPlayer struct {
	// ID is the Discord user ID
	ID string `json:"id"`

	// Name is the display name at the time the game started
	Name string `json:"name"`
}

// UnmarshalJSON accepts the id as a JSON string or a JSON integer
func (p *LogPlayer) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   json.RawMessage `json:"id"`
		Name string          `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := bytes.TrimSpace(raw.ID)
	switch {
	case len(id) == 0 || bytes.Equal(id, []byte("null")):
		p.ID = ""
	case id[0] == '"':
		if err := json.Unmarshal(id, &p.ID); err != nil {
			return err
		}
	default:
		if _, err := strconv.ParseUint(string(id), 10, 64); err != nil {
			return fmt.Errorf("invalid player id %s", id)
		}
		p.ID = string(id)
	}

	p.Name = raw.Name
	return nil
}

// logTime decodes RFC 3339 timestamps as well as zone-less ISO 8601 ones
type logTime time.Time

func (t *logTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*t = logTime(parsed)
		return nil
	}

	parsed, err := time.ParseInLocation(isoLocalLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = logTime(parsed)
	return nil
}

// GameLogEntry is the durable record of one game
type GameLogEntry struct {
	// GameNumber is unique and strictly increasing across the log
	GameNumber uint64 `json:"game_number"`

	// Timestamp is when the game started
	Timestamp time.Time `json:"timestamp"`

	// Status is the lifecycle state of the game
	Status GameStatus `json:"status"`

	// Team1 lists the players on team 1 in draft order
	Team1 []LogPlayer `json:"team1"`

	// Team2 lists the players on team 2 in draft order
	Team2 []LogPlayer `json:"team2"`

	// Winner is 1 or 2 for a completed game, nil otherwise
	Winner *int `json:"winner"`

	// EndTimestamp is set once the game reaches a terminal status
	EndTimestamp *time.Time `json:"end_timestamp,omitempty"`
}

// UnmarshalJSON reads entries written by this bot and by older deployments
// that stored zone-less timestamps and numeric player ids
func (e *GameLogEntry) UnmarshalJSON(data []byte) error {
	type plain GameLogEntry
	var raw struct {
		plain
		Timestamp    logTime  `json:"timestamp"`
		EndTimestamp *logTime `json:"end_timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = GameLogEntry(raw.plain)
	e.Timestamp = time.Time(raw.Timestamp)
	e.EndTimestamp = nil
	if raw.EndTimestamp != nil {
		ended := time.Time(*raw.EndTimestamp)
		e.EndTimestamp = &ended
	}
	return nil
}

// Resolve moves a started entry into its terminal state
func (e *GameLogEntry) Resolve(outcome Outcome, at time.Time) {
	ended := at
	e.EndTimestamp = &ended
	if outcome == OutcomeCancelled {
		e.Status = GameStatusCancelled
		e.Winner = nil
		return
	}
	winner := int(outcome)
	e.Status = GameStatusCompleted
	e.Winner = &winner
}

// Players returns every participant of the game, team 1 first
func (e *GameLogEntry) Players() []LogPlayer {
	players := make([]LogPlayer, 0, len(e.Team1)+len(e.Team2))
	players = append(players, e.Team1...)
	return append(players, e.Team2...)
}

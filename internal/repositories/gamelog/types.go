package gamelog

import (
	"errors"
	"time"

	"github.com/KirkDiggler/squadup/internal/models"
)

// LogError is returned for game log lookups and state violations
type LogError string

// Error implements the error interface
func (e LogError) Error() string {
	return string(e)
}

const (
	ErrEntryNotFound     LogError = "game log entry not found"
	ErrDuplicateEntry    LogError = "game log entry already exists"
	ErrAlreadyFinalized  LogError = "game log entry already finalized"
	ErrInvalidGameNumber LogError = "game number must be positive"
)

const (
	// DefaultSearchLimit is used when no limit is given
	DefaultSearchLimit = 10

	// MaxSearchLimit caps how many entries a search returns
	MaxSearchLimit = 50

	// SearchAll returns the most recent entries without filtering
	SearchAll = "all"
)

// AppendStartInput contains the entry to append
type AppendStartInput struct {
	Entry *models.GameLogEntry
}

// FinalizeInput contains parameters for resolving an entry
type FinalizeInput struct {
	GameNumber uint64
	Outcome    models.Outcome
	EndedAt    time.Time
}

// GetEntryInput contains parameters for retrieving an entry
type GetEntryInput struct {
	GameNumber uint64
}

// SearchInput contains parameters for searching the log
type SearchInput struct {
	// Query is "all" or a case-insensitive fragment
	Query string

	// Limit is clamped to [1, MaxSearchLimit], DefaultSearchLimit when <= 0
	Limit int
}

// SearchOutput contains the matching entries, newest first
type SearchOutput struct {
	Entries []*models.GameLogEntry
}

func validateStart(input *AppendStartInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}
	if input.Entry.GameNumber == 0 {
		return ErrInvalidGameNumber
	}
	if input.Entry.Status != models.GameStatusStarted {
		return errors.New("new entries must have status started")
	}
	return nil
}

func validateFinalize(input *FinalizeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.GameNumber == 0 {
		return ErrInvalidGameNumber
	}
	if !input.Outcome.IsValid() {
		return errors.New("invalid outcome")
	}
	return nil
}

// finalize applies the outcome to a copy of entry
func finalize(entry *models.GameLogEntry, input *FinalizeInput) (*models.GameLogEntry, error) {
	if entry.Status.IsTerminal() {
		return nil, ErrAlreadyFinalized
	}
	resolved := *entry
	resolved.Resolve(input.Outcome, input.EndedAt)
	return &resolved, nil
}

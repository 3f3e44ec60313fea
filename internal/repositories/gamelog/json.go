package gamelog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/squadup/internal/common/jsonfile"
	"github.com/KirkDiggler/squadup/internal/models"
)

const logFile = "game_log.json"

// JSONConfig holds configuration for the file-backed game log
type JSONConfig struct {
	// DataDir holds game_log.json
	DataDir string
}

// document is the on-disk layout of game_log.json
type document struct {
	Games          []*models.GameLogEntry `json:"games"`
	LastGameNumber uint64                 `json:"last_game_number"`
}

// jsonRepository keeps the log in memory and rewrites the file on every change
type jsonRepository struct {
	mu    sync.RWMutex
	path  string
	doc   document
	index map[uint64]int
}

// NewJSON loads game_log.json from the data directory
func NewJSON(cfg *JSONConfig) (*jsonRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data dir cannot be empty")
	}

	r := &jsonRepository{
		path:  filepath.Join(cfg.DataDir, logFile),
		index: make(map[uint64]int),
	}

	if _, err := jsonfile.Load(r.path, &r.doc); err != nil {
		return nil, err
	}

	games := r.doc.Games[:0]
	for _, e := range r.doc.Games {
		if e == nil {
			continue
		}
		if _, dup := r.index[e.GameNumber]; dup {
			return nil, fmt.Errorf("game %d appears twice in %s", e.GameNumber, r.path)
		}
		r.index[e.GameNumber] = len(games)
		games = append(games, e)

		// never hand out a number that is already in the log
		if e.GameNumber > r.doc.LastGameNumber {
			r.doc.LastGameNumber = e.GameNumber
		}
	}
	r.doc.Games = games
	if r.doc.Games == nil {
		r.doc.Games = []*models.GameLogEntry{}
	}

	return r, nil
}

// NextGameNumber bumps the counter and persists it before returning
func (r *jsonRepository) NextGameNumber(ctx context.Context) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.LastGameNumber++
	if err := jsonfile.Save(r.path, r.doc); err != nil {
		r.doc.LastGameNumber--
		return 0, fmt.Errorf("failed to save game counter: %w", err)
	}

	return r.doc.LastGameNumber, nil
}

// AppendStart adds a started entry to the end of the log
func (r *jsonRepository) AppendStart(ctx context.Context, input *AppendStartInput) error {
	if err := validateStart(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[input.Entry.GameNumber]; exists {
		return ErrDuplicateEntry
	}

	entry := *input.Entry
	previousLast := r.doc.LastGameNumber
	r.doc.Games = append(r.doc.Games, &entry)
	if entry.GameNumber > r.doc.LastGameNumber {
		r.doc.LastGameNumber = entry.GameNumber
	}

	if err := jsonfile.Save(r.path, r.doc); err != nil {
		r.doc.Games = r.doc.Games[:len(r.doc.Games)-1]
		r.doc.LastGameNumber = previousLast
		return fmt.Errorf("failed to append game: %w", err)
	}

	r.index[entry.GameNumber] = len(r.doc.Games) - 1
	return nil
}

// Finalize resolves the entry in place
func (r *jsonRepository) Finalize(ctx context.Context, input *FinalizeInput) (*models.GameLogEntry, error) {
	if err := validateFinalize(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[input.GameNumber]
	if !ok {
		return nil, ErrEntryNotFound
	}

	previous := r.doc.Games[i]
	resolved, err := finalize(previous, input)
	if err != nil {
		return nil, err
	}

	r.doc.Games[i] = resolved
	if err := jsonfile.Save(r.path, r.doc); err != nil {
		r.doc.Games[i] = previous
		return nil, fmt.Errorf("failed to finalize game: %w", err)
	}

	out := *resolved
	return &out, nil
}

// GetEntry returns a copy of the entry
func (r *jsonRepository) GetEntry(ctx context.Context, input *GetEntryInput) (*models.GameLogEntry, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[input.GameNumber]
	if !ok {
		return nil, ErrEntryNotFound
	}

	entry := *r.doc.Games[i]
	return &entry, nil
}

// Search scans the whole log
func (r *jsonRepository) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	entries := make([]*models.GameLogEntry, len(r.doc.Games))
	for i, e := range r.doc.Games {
		entry := *e
		entries[i] = &entry
	}
	r.mu.RUnlock()

	return &SearchOutput{
		Entries: filter(entries, input.Query, input.Limit),
	}, nil
}

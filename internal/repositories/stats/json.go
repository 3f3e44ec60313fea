package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/squadup/internal/common/jsonfile"
	"github.com/KirkDiggler/squadup/internal/models"
)

const (
	statsFile = "player_stats.json"

	// metadataPrefix marks keys in the stats file that are not players
	metadataPrefix = "_"
)

// JSONConfig holds configuration for the file-backed stats repository
type JSONConfig struct {
	// DataDir holds player_stats.json
	DataDir string
}

// jsonRepository keeps every record in memory and rewrites the file on change
type jsonRepository struct {
	mu       sync.RWMutex
	path     string
	players  map[string]*models.PlayerStats
	metadata map[string]json.RawMessage
}

// NewJSON loads player_stats.json. Keys starting with "_" are kept verbatim
// but never treated as players.
func NewJSON(cfg *JSONConfig) (*jsonRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data dir cannot be empty")
	}

	r := &jsonRepository{
		path:     filepath.Join(cfg.DataDir, statsFile),
		players:  make(map[string]*models.PlayerStats),
		metadata: make(map[string]json.RawMessage),
	}

	var raw map[string]json.RawMessage
	if _, err := jsonfile.Load(r.path, &raw); err != nil {
		return nil, err
	}

	for key, value := range raw {
		if strings.HasPrefix(key, metadataPrefix) {
			r.metadata[key] = value
			continue
		}

		s := &models.PlayerStats{}
		if err := json.Unmarshal(value, s); err != nil {
			return nil, fmt.Errorf("failed to decode stats for %s: %w", key, err)
		}
		s.UserID = key
		r.players[key] = s
	}

	return r, nil
}

// GetStats returns a copy of the player's record
func (r *jsonRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.players[input.UserID]
	if !ok {
		return &models.PlayerStats{UserID: input.UserID}, nil
	}

	s := *stored
	return &s, nil
}

// RecordResult applies the result to a copy of the affected records and only
// commits them once the file has been written.
func (r *jsonRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make(map[string]*models.PlayerStats, len(input.Winners)+len(input.Losers))
	bump := func(id string, won bool) {
		s := models.PlayerStats{UserID: id}
		if stored, ok := r.players[id]; ok {
			s = *stored
		}
		s.GamesPlayed++
		if won {
			s.Wins++
		} else {
			s.Losses++
		}
		updated[id] = &s
	}
	for _, id := range input.Winners {
		bump(id, true)
	}
	for _, id := range input.Losers {
		bump(id, false)
	}

	doc := r.document(updated)
	if err := jsonfile.Save(r.path, doc); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	for id, s := range updated {
		r.players[id] = s
	}

	return nil
}

// GetLeaderboard ranks the in-memory records
func (r *jsonRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	all, err := r.ListStats(ctx)
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Entries: Rank(all, input.Limit),
	}, nil
}

// ListStats returns copies of every record ordered by user ID
func (r *jsonRepository) ListStats(ctx context.Context) ([]*models.PlayerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*models.PlayerStats, 0, len(r.players))
	for _, stored := range r.players {
		s := *stored
		all = append(all, &s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].UserID < all[j].UserID
	})

	return all, nil
}

// document builds the file contents with pending overrides applied
func (r *jsonRepository) document(pending map[string]*models.PlayerStats) map[string]any {
	doc := make(map[string]any, len(r.players)+len(pending)+len(r.metadata))
	for key, value := range r.metadata {
		doc[key] = value
	}
	for id, s := range r.players {
		doc[id] = s
	}
	for id, s := range pending {
		doc[id] = s
	}
	return doc
}

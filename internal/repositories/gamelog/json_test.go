package gamelog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONValidation(t *testing.T) {
	_, err := NewJSON(nil)
	assert.Error(t, err)

	_, err = NewJSON(&JSONConfig{})
	assert.Error(t, err)
}

func TestJSONRepositoryFileFormat(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

	repo, err := NewJSON(&JSONConfig{DataDir: dir})
	require.NoError(t, err)

	n, err := repo.NextGameNumber(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.AppendStart(ctx, &AppendStartInput{Entry: &models.GameLogEntry{
		GameNumber: n,
		Timestamp:  start,
		Status:     models.GameStatusStarted,
		Team1:      []models.LogPlayer{{ID: "1", Name: "Ada"}},
		Team2:      []models.LogPlayer{{ID: "2", Name: "Bo"}},
	}}))

	data, err := os.ReadFile(filepath.Join(dir, logFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"games": [{
			"game_number": 1,
			"timestamp": "2025-06-01T20:00:00Z",
			"status": "started",
			"team1": [{"id": "1", "name": "Ada"}],
			"team2": [{"id": "2", "name": "Bo"}],
			"winner": null
		}],
		"last_game_number": 1
	}`, string(data))

	_, err = repo.Finalize(ctx, &FinalizeInput{GameNumber: n, Outcome: models.OutcomeTeam1Wins, EndedAt: start.Add(time.Hour)})
	require.NoError(t, err)

	data, err = os.ReadFile(filepath.Join(dir, logFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"games": [{
			"game_number": 1,
			"timestamp": "2025-06-01T20:00:00Z",
			"status": "completed",
			"team1": [{"id": "1", "name": "Ada"}],
			"team2": [{"id": "2", "name": "Bo"}],
			"winner": 1,
			"end_timestamp": "2025-06-01T21:00:00Z"
		}],
		"last_game_number": 1
	}`, string(data))
}

func TestJSONRepositoryCounterSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewJSON(&JSONConfig{DataDir: dir})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := repo.NextGameNumber(ctx)
		require.NoError(t, err)
	}

	reloaded, err := NewJSON(&JSONConfig{DataDir: dir})
	require.NoError(t, err)
	n, err := reloaded.NextGameNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)
}

func TestJSONRepositoryCounterNeverBehindEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, logFile), []byte(`{
		"games": [{"game_number": 12, "timestamp": "2025-01-01T00:00:00Z", "status": "completed", "team1": [], "team2": [], "winner": 2}],
		"last_game_number": 3
	}`), 0o644))

	repo, err := NewJSON(&JSONConfig{DataDir: dir})
	require.NoError(t, err)

	n, err := repo.NextGameNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(13), n)
}

func TestJSONRepositoryCounterRollsBackOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewJSON(&JSONConfig{DataDir: dir})
	require.NoError(t, err)

	good := repo.path
	repo.path = filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(repo.path, "child"), 0o755))

	_, err = repo.NextGameNumber(ctx)
	require.Error(t, err)

	repo.path = good
	n, err := repo.NextGameNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestJSONRepositoryLoadsLegacyLog(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	require.NoError(t, os.WriteFile(filepath.Join(dir, logFile), []byte(`{
  "games": [
    {
      "game_number": 1,
      "timestamp": "2024-05-01T18:22:10.123456",
      "status": "completed",
      "team1": [{"id": 284736251098374144, "name": "Ada"}],
      "team2": [{"id": 384736251098374144, "name": "Bo"}],
      "winner": 1,
      "end_timestamp": "2024-05-01T18:51:02.000001"
    },
    {
      "game_number": 2,
      "timestamp": "2024-05-01T19:05:00.5",
      "status": "started",
      "team1": [{"id": 284736251098374144, "name": "Ada"}],
      "team2": [{"id": 384736251098374144, "name": "Bo"}],
      "winner": null
    }
  ],
  "last_game_number": 2
}`), 0o644))

	repo, err := NewJSON(&JSONConfig{DataDir: dir})
	require.NoError(t, err)

	first, err := repo.GetEntry(ctx, &GetEntryInput{GameNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 18, 22, 10, 123456000, time.UTC), first.Timestamp)
	assert.Equal(t, []models.LogPlayer{{ID: "284736251098374144", Name: "Ada"}}, first.Team1)
	require.NotNil(t, first.EndTimestamp)
	assert.Equal(t, time.Date(2024, 5, 1, 18, 51, 2, 1000, time.UTC), *first.EndTimestamp)

	// an open legacy game can still be finalized and the file is rewritten in the current format
	_, err = repo.Finalize(ctx, &FinalizeInput{
		GameNumber: 2,
		Outcome:    models.OutcomeCancelled,
		EndedAt:    time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	n, err := repo.NextGameNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)

	reloaded, err := NewJSON(&JSONConfig{DataDir: dir})
	require.NoError(t, err)
	second, err := reloaded.GetEntry(ctx, &GetEntryInput{GameNumber: 2})
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusCancelled, second.Status)
	assert.Equal(t, "384736251098374144", second.Team2[0].ID)
}

func TestJSONRepositoryRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, logFile), []byte(`{"games": {`), 0o644))

	_, err := NewJSON(&JSONConfig{DataDir: dir})
	assert.Error(t, err)
}

func TestJSONRepositoryRejectsDuplicateNumbers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, logFile), []byte(`{
		"games": [
			{"game_number": 1, "timestamp": "2025-01-01T00:00:00Z", "status": "started", "team1": [], "team2": [], "winner": null},
			{"game_number": 1, "timestamp": "2025-01-01T00:00:00Z", "status": "started", "team1": [], "team2": [], "winner": null}
		],
		"last_game_number": 1
	}`), 0o644))

	_, err := NewJSON(&JSONConfig{DataDir: dir})
	assert.Error(t, err)
}

package stats

import (
	"context"

	"github.com/KirkDiggler/squadup/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/squadup/internal/repositories/stats Repository

// Repository defines the interface for player win/loss persistence
type Repository interface {
	// GetStats returns the player's record. Unseen players get a zero record that is not persisted.
	GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error)

	// RecordResult credits a win to every winner and a loss to every loser
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetLeaderboard returns the top players by wins, then win rate
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// ListStats returns every stored record ordered by user ID
	ListStats(ctx context.Context) ([]*models.PlayerStats, error)
}

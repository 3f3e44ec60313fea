package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/squadup/internal/services/game Service

// Service defines the interface for the active game registry
type Service interface {
	// StartGame provisions rooms, assigns a game number and registers the game
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// EndGame resolves a game exactly once: stats, game log, room teardown, deregistration
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// GetGame returns a registered game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListGames returns registered games ordered by game number
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)
}

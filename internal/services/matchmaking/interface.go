package matchmaking

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/squadup/internal/services/matchmaking Service

// Service notifies regional players that someone is looking for a game
type Service interface {
	// FindPlayers DMs every member of the region's role except the requester
	FindPlayers(ctx context.Context, input *FindPlayersInput) (*FindPlayersOutput, error)
}

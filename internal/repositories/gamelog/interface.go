package gamelog

import (
	"context"

	"github.com/KirkDiggler/squadup/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/squadup/internal/repositories/gamelog Repository

// Repository defines the interface for the append-only game log
type Repository interface {
	// NextGameNumber durably increments and returns the game counter
	NextGameNumber(ctx context.Context) (uint64, error)

	// AppendStart records a newly started game
	AppendStart(ctx context.Context, input *AppendStartInput) error

	// Finalize moves a started entry to completed or cancelled
	Finalize(ctx context.Context, input *FinalizeInput) (*models.GameLogEntry, error)

	// GetEntry retrieves an entry by game number
	GetEntry(ctx context.Context, input *GetEntryInput) (*models.GameLogEntry, error)

	// Search finds entries by game number, player name or winner, newest first
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
}

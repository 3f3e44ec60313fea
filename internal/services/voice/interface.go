package voice

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/squadup/internal/services/voice Service

// Service creates and removes the temporary rooms a game is played in
type Service interface {
	// Provision creates a category with one room per team and moves each
	// connected player into their team's room
	Provision(ctx context.Context, input *ProvisionInput) (*ProvisionOutput, error)

	// Teardown empties and deletes a game's rooms. It never stops early;
	// individual failures are reported in the output.
	Teardown(ctx context.Context, input *TeardownInput) (*TeardownOutput, error)
}

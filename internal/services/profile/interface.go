package profile

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/squadup/internal/services/profile Service

// Service manages host onboarding and player profiles
type Service interface {
	// SetupHost whitelists a host, saves their profile and grants the host role
	SetupHost(ctx context.Context, input *SetupHostInput) (*SetupHostOutput, error)

	// IsWhitelisted reports whether the user is a host or has a profile
	IsWhitelisted(ctx context.Context, input *IsWhitelistedInput) (bool, error)

	// InGameName returns the user's in-game name, or UnknownName
	InGameName(ctx context.Context, input *InGameNameInput) (string, error)
}

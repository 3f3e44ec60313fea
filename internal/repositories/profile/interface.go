package profile

import (
	"context"

	"github.com/KirkDiggler/squadup/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/squadup/internal/repositories/profile Repository

// Repository defines the interface for profile and host whitelist persistence
type Repository interface {
	// SaveProfile creates or overwrites a user's profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile by user ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)

	// AddHost puts a user on the host whitelist. Adding an existing host is a no-op.
	AddHost(ctx context.Context, input *AddHostInput) error

	// IsHost reports whether the user is on the host whitelist
	IsHost(ctx context.Context, input *IsHostInput) (bool, error)

	// ListHosts returns the whitelisted user IDs in the order they were added
	ListHosts(ctx context.Context) ([]string, error)
}

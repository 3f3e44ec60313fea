package profile

import (
	"errors"

	"github.com/KirkDiggler/squadup/internal/models"
)

// ErrProfileNotFound is returned when a user has no profile
var ErrProfileNotFound = errors.New("profile not found")

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// AddHostInput contains parameters for whitelisting a host
type AddHostInput struct {
	UserID string
}

// IsHostInput contains parameters for a whitelist check
type IsHostInput struct {
	UserID string
}

func validateProfile(input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}
	if input.Profile.UserID == "" {
		return errors.New("profile user ID cannot be empty")
	}
	return nil
}

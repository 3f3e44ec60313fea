package profile

import (
	"github.com/KirkDiggler/squadup/internal/models"
)

const (
	// UnknownName is shown for users without a profile
	UnknownName = "Unknown"

	// MaxUserIDLength bounds the host ID field of the setup form
	MaxUserIDLength = 20

	// MaxInGameNameLength bounds the in-game name, in characters
	MaxInGameNameLength = 50
)

// SetupHostInput contains the values from the host setup form
type SetupHostInput struct {
	// GuildID is where the host role is granted
	GuildID string

	HostID     string
	InGameName string
}

// SetupHostOutput contains the saved profile
type SetupHostOutput struct {
	Profile *models.Profile

	// RoleAssigned is false when no host role is configured or granting it failed
	RoleAssigned bool
}

// IsWhitelistedInput contains parameters for a whitelist check
type IsWhitelistedInput struct {
	UserID string
}

// InGameNameInput contains parameters for a name lookup
type InGameNameInput struct {
	UserID string
}

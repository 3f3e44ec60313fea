package voice

import (
	"github.com/KirkDiggler/squadup/internal/models"
)

const (
	// Team room markers. Rooms starting with either are never used as a fallback.
	Team1Marker = "🔴"
	Team2Marker = "🔵"

	Team1RoomName = Team1Marker + " Team 1"
	Team2RoomName = Team2Marker + " Team 2"

	categoryPrefix = "Game - "
)

// CategoryName returns the category created for a game drafted in channelName
func CategoryName(channelName string) string {
	return categoryPrefix + channelName
}

// ProvisionInput contains parameters for creating a game's rooms
type ProvisionInput struct {
	GuildID string

	// ChannelName is the voice channel the players were drafted from
	ChannelName string

	Team1 []string
	Team2 []string
}

// ProvisionOutput contains the created rooms
type ProvisionOutput struct {
	Rooms models.GameRooms

	// Moved counts players placed in a team room
	Moved int

	// Skipped counts players who were not connected to voice
	Skipped int

	// MoveFailures counts players that could not be moved
	MoveFailures int
}

// TeardownInput identifies the rooms to remove
type TeardownInput struct {
	GuildID string
	Rooms   models.GameRooms
}

// TeardownOutput reports what happened to the rooms and their occupants
type TeardownOutput struct {
	// FallbackChannelID is where occupants were sent, empty if they were disconnected
	FallbackChannelID string

	Relocated    int
	Disconnected int

	// Errors collects every failure. Rooms that were already gone are not errors.
	Errors []error
}

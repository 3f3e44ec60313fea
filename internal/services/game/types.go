package game

import (
	"github.com/KirkDiggler/squadup/internal/models"
)

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GuildID string

	// VoiceChannelName is the channel the teams were drafted from
	VoiceChannelName string

	Team1 []*models.Member
	Team2 []*models.Member

	// StartedBy is the user who confirmed the draft
	StartedBy string
}

// StartGameOutput contains the registered game
type StartGameOutput struct {
	Game *models.ActiveGame

	// Moved, Skipped and MoveFailures summarize the player moves
	Moved        int
	Skipped      int
	MoveFailures int

	// Warnings lists steps that failed without stopping the start
	Warnings []string
}

// EndGameInput contains parameters for resolving a game
type EndGameInput struct {
	GameID  string
	Outcome models.Outcome

	// EndedBy is the user who pressed the result button
	EndedBy string
}

// EndGameOutput contains the resolved game
type EndGameOutput struct {
	Game *models.ActiveGame

	// Entry is the finalized log entry, nil if the log could not be updated
	Entry *models.GameLogEntry

	// Warnings lists steps that failed without stopping finalization
	Warnings []string
}

// GetGameInput contains parameters for looking up a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the game
type GetGameOutput struct {
	Game *models.ActiveGame
}

// ListGamesInput filters the registry
type ListGamesInput struct {
	// GuildID limits the result to one guild, empty for all
	GuildID string
}

// ListGamesOutput contains the registered games
type ListGamesOutput struct {
	Games []*models.ActiveGame
}

package models

import (
	"fmt"
	"time"
)

// GameRooms are the voice channels created for a single game
type GameRooms struct {
	// CategoryID groups the two team rooms
	CategoryID string

	// Team1ChannelID is the voice room for team 1
	Team1ChannelID string

	// Team2ChannelID is the voice room for team 2
	Team2ChannelID string
}

// ActiveGame is a game between confirmation and resolution. It only lives in memory.
type ActiveGame struct {
	// ID is "{guild_id}_{game_number}"
	ID string `json:"id"`

	// GameNumber references the matching game log entry
	GameNumber uint64 `json:"game_number"`

	// GuildID is the Discord server the game runs in
	GuildID string `json:"guild_id"`

	// Team1 holds the user IDs on team 1
	Team1 []string `json:"team1"`

	// Team2 holds the user IDs on team 2
	Team2 []string `json:"team2"`

	// Rooms are the voice channels provisioned for the game
	Rooms GameRooms `json:"-"`

	// StartedBy is the user who confirmed the draft
	StartedBy string `json:"started_by"`

	// VoiceChannelName is the channel the players were drafted from
	VoiceChannelName string `json:"voice_channel_name"`

	// StartedAt is when the game was registered
	StartedAt time.Time `json:"started_at"`
}

// GameID builds the registry key for a game
func GameID(guildID string, gameNumber uint64) string {
	return fmt.Sprintf("%s_%d", guildID, gameNumber)
}

// Participants returns every user in the game, team 1 first
func (g *ActiveGame) Participants() []string {
	ids := make([]string, 0, len(g.Team1)+len(g.Team2))
	ids = append(ids, g.Team1...)
	return append(ids, g.Team2...)
}

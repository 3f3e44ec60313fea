package models

import (
	"time"
)

// Draft is a proposed pair of teams waiting to be confirmed
type Draft struct {
	// ID identifies the draft in button custom IDs
	ID string

	// GuildID is the Discord server the draft belongs to
	GuildID string

	// VoiceChannelID is where the participants were gathered
	VoiceChannelID string

	// VoiceChannelName is used to name the game's category
	VoiceChannelName string

	// RequestedBy is the user who created the draft
	RequestedBy string

	// Team1 is the first proposed team
	Team1 []*Member

	// Team2 is the second proposed team
	Team2 []*Member

	// Rerolls counts how many times the teams were reshuffled
	Rerolls int

	// CreatedAt is when the draft was proposed
	CreatedAt time.Time

	// ExpiresAt is when the draft can no longer be started
	ExpiresAt time.Time
}

// IsExpired reports whether the draft's validity window has passed
func (d *Draft) IsExpired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}

// Package platform declares the narrow slice of the chat platform the game
// services depend on. The discord subpackage implements it with discordgo.
package platform

import (
	"context"

	"github.com/KirkDiggler/squadup/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/squadup/internal/platform VoiceRooms,Messenger,ChannelHistory,RoleDirectory,MemberDirectory

// VoiceRooms manages voice channels and the members inside them
type VoiceRooms interface {
	// CreateCategory creates a channel category in the guild
	CreateCategory(ctx context.Context, guildID, name string) (*models.Channel, error)

	// CreateVoiceChannel creates a voice channel under parentID
	CreateVoiceChannel(ctx context.Context, guildID, parentID, name string) (*models.Channel, error)

	// DeleteChannel removes a channel. Returns ErrNotFound if it is already gone.
	DeleteChannel(ctx context.Context, channelID string) error

	// MoveMember moves a member into channelID. An empty channelID disconnects them.
	MoveMember(ctx context.Context, guildID, userID, channelID string) error

	// ListVoiceChannels returns every voice channel in the guild
	ListVoiceChannels(ctx context.Context, guildID string) ([]*models.Channel, error)

	// ChannelMembers returns the IDs of users connected to a voice channel
	ChannelMembers(ctx context.Context, guildID, channelID string) ([]string, error)

	// MemberChannel returns the voice channel a user is connected to, or "" if none
	MemberChannel(ctx context.Context, guildID, userID string) (string, error)
}

// Messenger delivers notices to users and channels
type Messenger interface {
	// SendDirectMessage opens a DM with the user and posts the notice
	SendDirectMessage(ctx context.Context, userID string, notice *models.Notice) error

	// SendChannelMessage posts the notice to a text channel
	SendChannelMessage(ctx context.Context, channelID string, notice *models.Notice) error
}

// ChannelHistory reads and prunes the messages the bot posted itself
type ChannelHistory interface {
	// BotMessages returns the bot's own messages among the latest limit
	// messages of the channel, newest first
	BotMessages(ctx context.Context, channelID string, limit int) ([]*models.Message, error)

	// DeleteMessage removes a message. Returns ErrNotFound if it is already gone.
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// RoleDirectory reads and assigns guild roles
type RoleDirectory interface {
	// RoleMembers returns every guild member holding the role
	RoleMembers(ctx context.Context, guildID, roleID string) ([]*models.Member, error)

	// AddRole grants the role to a member
	AddRole(ctx context.Context, guildID, userID, roleID string) error
}

// MemberDirectory looks up guild members
type MemberDirectory interface {
	// Member returns one guild member. Returns ErrNotFound if they left.
	Member(ctx context.Context, guildID, userID string) (*models.Member, error)

	// SearchMembers returns members whose username or nickname starts with query
	SearchMembers(ctx context.Context, guildID, query string, limit int) ([]*models.Member, error)
}

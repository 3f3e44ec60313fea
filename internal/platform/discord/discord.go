// Package discord implements the platform interfaces on top of discordgo.
package discord

import (
	"context"
	"errors"
	"slices"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// memberPageSize is the largest page the guild members endpoint returns
const memberPageSize = 1000

// Config holds configuration for the adapter
type Config struct {
	Session *discordgo.Session
}

// Adapter implements the platform interfaces on top of a discordgo session
type Adapter struct {
	api   restAPI
	state stateCache

	// botUserID is known once the gateway sends Ready
	botUserID func() string
}

// New creates a new Adapter
func New(cfg *Config) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.Session.State == nil {
		return nil, errors.New("session state cannot be nil")
	}

	state := cfg.Session.State
	return &Adapter{
		api:   cfg.Session,
		state: state,
		botUserID: func() string {
			state.RLock()
			defer state.RUnlock()
			if state.User == nil {
				return ""
			}
			return state.User.ID
		},
	}, nil
}

// CreateCategory creates a channel category
func (a *Adapter) CreateCategory(ctx context.Context, guildID, name string) (*models.Channel, error) {
	c, err := a.api.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("create category", err)
	}
	return channel(c), nil
}

// CreateVoiceChannel creates a voice channel under a category
func (a *Adapter) CreateVoiceChannel(ctx context.Context, guildID, parentID, name string) (*models.Channel, error) {
	c, err := a.api.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: parentID,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("create voice channel", err)
	}
	return channel(c), nil
}

// DeleteChannel deletes a channel
func (a *Adapter) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := a.api.ChannelDelete(channelID, discordgo.WithContext(ctx))
	return translate("delete channel", err)
}

// MoveMember moves a member, or disconnects them when channelID is empty
func (a *Adapter) MoveMember(ctx context.Context, guildID, userID, channelID string) error {
	var target *string
	if channelID != "" {
		target = &channelID
	}
	return translate("move member", a.api.GuildMemberMove(guildID, userID, target, discordgo.WithContext(ctx)))
}

// ListVoiceChannels returns the guild's voice channels in display order
func (a *Adapter) ListVoiceChannels(ctx context.Context, guildID string) ([]*models.Channel, error) {
	all, err := a.api.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("list channels", err)
	}

	var voice []*discordgo.Channel
	for _, c := range all {
		if c.Type == discordgo.ChannelTypeGuildVoice {
			voice = append(voice, c)
		}
	}
	slices.SortStableFunc(voice, func(x, y *discordgo.Channel) int {
		return x.Position - y.Position
	})

	out := make([]*models.Channel, 0, len(voice))
	for _, c := range voice {
		out = append(out, channel(c))
	}
	return out, nil
}

// ChannelMembers reads voice occupancy from the gateway state cache
func (a *Adapter) ChannelMembers(_ context.Context, guildID, channelID string) ([]string, error) {
	guild, err := a.state.Guild(guildID)
	if err != nil {
		return nil, translate("channel members", err)
	}

	var ids []string
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			ids = append(ids, vs.UserID)
		}
	}
	return ids, nil
}

// MemberChannel returns "" when the user is not connected to voice
func (a *Adapter) MemberChannel(_ context.Context, guildID, userID string) (string, error) {
	vs, err := a.state.VoiceState(guildID, userID)
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return "", nil
	}
	if err != nil {
		return "", translate("member channel", err)
	}
	return vs.ChannelID, nil
}

// SendDirectMessage opens a DM channel and posts the notice
func (a *Adapter) SendDirectMessage(ctx context.Context, userID string, notice *models.Notice) error {
	dm, err := a.api.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return translate("open dm", err)
	}

	_, err = a.api.ChannelMessageSendEmbed(dm.ID, Embed(notice), discordgo.WithContext(ctx))
	return translate("send dm", err)
}

// SendChannelMessage posts the notice to a channel
func (a *Adapter) SendChannelMessage(ctx context.Context, channelID string, notice *models.Notice) error {
	_, err := a.api.ChannelMessageSendEmbed(channelID, Embed(notice), discordgo.WithContext(ctx))
	return translate("send message", err)
}

// BotMessages reads the latest limit messages (at most 100) and keeps the
// ones the bot authored
func (a *Adapter) BotMessages(ctx context.Context, channelID string, limit int) ([]*models.Message, error) {
	botID := a.botUserID()
	if botID == "" {
		return nil, errors.New("bot user is not known before ready")
	}

	msgs, err := a.api.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("read history", err)
	}

	var out []*models.Message
	for _, m := range msgs {
		if m.Author == nil || m.Author.ID != botID {
			continue
		}
		out = append(out, &models.Message{
			ID:        m.ID,
			ChannelID: channelID,
			HasEmbeds: len(m.Embeds) > 0,
		})
	}
	return out, nil
}

// DeleteMessage removes a message
func (a *Adapter) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return translate("delete message", a.api.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)))
}

// RoleMembers pages through the guild member list and keeps role holders
func (a *Adapter) RoleMembers(ctx context.Context, guildID, roleID string) ([]*models.Member, error) {
	var (
		out   []*models.Member
		after string
	)

	for {
		page, err := a.api.GuildMembers(guildID, after, memberPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, translate("list members", err)
		}

		for _, m := range page {
			if m.User == nil || !slices.Contains(m.Roles, roleID) {
				continue
			}
			out = append(out, Member(m))
		}

		if len(page) < memberPageSize || page[len(page)-1].User == nil {
			return out, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// AddRole grants a role to a member
func (a *Adapter) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	return translate("add role", a.api.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)))
}

// Member prefers the gateway cache and falls back to REST
func (a *Adapter) Member(ctx context.Context, guildID, userID string) (*models.Member, error) {
	if m, err := a.state.Member(guildID, userID); err == nil && m.User != nil {
		return Member(m), nil
	}

	m, err := a.api.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("get member", err)
	}
	return Member(m), nil
}

// SearchMembers runs the guild member prefix search
func (a *Adapter) SearchMembers(ctx context.Context, guildID, query string, limit int) ([]*models.Member, error) {
	found, err := a.api.GuildMembersSearch(guildID, query, limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translate("search members", err)
	}

	out := make([]*models.Member, 0, len(found))
	for _, m := range found {
		if mm := Member(m); mm != nil {
			out = append(out, mm)
		}
	}
	return out, nil
}

// GuildName returns the cached guild name, or "" when the guild is not cached
func (a *Adapter) GuildName(guildID string) string {
	g, err := a.state.Guild(guildID)
	if err != nil {
		return ""
	}
	return g.Name
}

var (
	_ platform.VoiceRooms      = (*Adapter)(nil)
	_ platform.Messenger       = (*Adapter)(nil)
	_ platform.ChannelHistory  = (*Adapter)(nil)
	_ platform.RoleDirectory   = (*Adapter)(nil)
	_ platform.MemberDirectory = (*Adapter)(nil)
)

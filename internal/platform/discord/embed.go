package discord

import (
	"time"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed converts a notice into a discord embed
func Embed(n *models.Notice) *discordgo.MessageEmbed {
	if n == nil {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       n.Title,
		Description: n.Description,
		Color:       n.Color,
	}

	for _, f := range n.Fields {
		if f == nil {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	if n.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: n.Footer}
	}

	if !n.Timestamp.IsZero() {
		embed.Timestamp = n.Timestamp.UTC().Format(time.RFC3339)
	}

	return embed
}

// DisplayName picks the nickname, then the global name, then the username
func DisplayName(m *discordgo.Member) string {
	if m == nil {
		return ""
	}
	if m.Nick != "" {
		return m.Nick
	}
	if m.User == nil {
		return ""
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

// Member converts a discord guild member
func Member(m *discordgo.Member) *models.Member {
	if m == nil || m.User == nil {
		return nil
	}
	return &models.Member{
		ID:          m.User.ID,
		DisplayName: DisplayName(m),
		Username:    m.User.Username,
		Bot:         m.User.Bot,
	}
}

func channel(c *discordgo.Channel) *models.Channel {
	return &models.Channel{
		ID:       c.ID,
		GuildID:  c.GuildID,
		ParentID: c.ParentID,
		Name:     c.Name,
	}
}

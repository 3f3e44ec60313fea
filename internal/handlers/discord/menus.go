package discord

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// Menu names, also used as the argument of refresh buttons
const (
	MenuDrafts    = "drafts"
	MenuFind      = "find"
	MenuStats     = "stats"
	MenuHostSetup = "host_setup"
)

const (
	// menuCheckDepth is how far back startup looks for a menu it already posted
	menuCheckDepth = 20

	// menuPurgeDepth is how far back a refresh deletes the bot's own messages
	menuPurgeDepth = 50
)

type menu struct {
	name      string
	channelID string

	// messages are posted in order, each one a notice plus its buttons
	messages []func() (*models.Notice, []discordgo.MessageComponent)
}

func (h *Handler) menus() []menu {
	return []menu{
		{MenuDrafts, h.channels.Drafts, []func() (*models.Notice, []discordgo.MessageComponent){renderDraftsMenu}},
		{MenuFind, h.channels.Find, []func() (*models.Notice, []discordgo.MessageComponent){renderFindMenu}},
		{MenuStats, h.channels.Stats, []func() (*models.Notice, []discordgo.MessageComponent){renderStatsMenu}},
		{MenuHostSetup, h.channels.HostSetup, []func() (*models.Notice, []discordgo.MessageComponent){renderHostSetupMenu, renderAdminPanel}},
	}
}

// selectMenus returns the configured menus, limited to names when any are given
func (h *Handler) selectMenus(names ...string) []menu {
	var out []menu
	for _, m := range h.menus() {
		if m.channelID == "" {
			continue
		}
		if len(names) > 0 && !slices.Contains(names, m.name) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// PostStartupMenus posts every configured menu whose channel has no recent
// menu from the bot. Reconnects call it again without duplicating menus.
func (h *Handler) PostStartupMenus(ctx context.Context, r Responder) ([]string, error) {
	var (
		posted []string
		errs   []error
	)

	for _, m := range h.selectMenus() {
		if h.hasRecentMenu(ctx, m.channelID) {
			continue
		}
		if err := h.postMenu(r, m); err != nil {
			errs = append(errs, err)
			continue
		}
		posted = append(posted, m.name)
	}

	return posted, errors.Join(errs...)
}

// hasRecentMenu reports whether the bot posted an embed in the channel lately.
// An unreadable history counts as no menu so the channel is not left empty.
func (h *Handler) hasRecentMenu(ctx context.Context, channelID string) bool {
	msgs, err := h.history.BotMessages(ctx, channelID, menuCheckDepth)
	if err != nil {
		h.logger.Warn("Failed to read channel history", "channel_id", channelID, "error", err)
		return false
	}

	for _, msg := range msgs {
		if msg.HasEmbeds {
			return true
		}
	}
	return false
}

// refreshMenus deletes the bot's recent messages in each menu channel and
// posts the menus again. Channels are purged before anything is posted so
// menus sharing a channel do not remove each other.
func (h *Handler) refreshMenus(ctx context.Context, r Responder, names ...string) ([]string, error) {
	selected := h.selectMenus(names...)

	purged := make(map[string]bool)
	for _, m := range selected {
		if purged[m.channelID] {
			continue
		}
		if err := h.purgeChannel(ctx, m.channelID); err != nil {
			return nil, err
		}
		purged[m.channelID] = true
	}

	var posted []string
	for _, m := range selected {
		if err := h.postMenu(r, m); err != nil {
			return posted, err
		}
		posted = append(posted, m.name)
	}

	return posted, nil
}

func (h *Handler) purgeChannel(ctx context.Context, channelID string) error {
	msgs, err := h.history.BotMessages(ctx, channelID, menuPurgeDepth)
	if err != nil {
		return fmt.Errorf("failed to read history of %s: %w", channelID, err)
	}

	for _, msg := range msgs {
		err := h.history.DeleteMessage(ctx, channelID, msg.ID)
		if err != nil && !errors.Is(err, platform.ErrNotFound) {
			h.logger.Warn("Failed to delete old menu message",
				"channel_id", channelID,
				"message_id", msg.ID,
				"error", err)
		}
	}

	return nil
}

func (h *Handler) postMenu(r Responder, m menu) error {
	for _, render := range m.messages {
		n, components := render()
		_, err := r.ChannelMessageSendComplex(m.channelID, &discordgo.MessageSend{
			Embeds:     embeds(n),
			Components: components,
		})
		if err != nil {
			return fmt.Errorf("failed to post %s menu: %w", m.name, err)
		}
	}
	return nil
}

// handleRefreshMenu answers a refresh button of the admin panel
func (h *Handler) handleRefreshMenu(ctx context.Context, r Responder, i *discordgo.InteractionCreate, name string) error {
	if !h.isManagement(i) {
		return RespondWithEphemeralMessage(r, i, msgManagementNeeded)
	}

	if len(h.selectMenus(name)) == 0 {
		return RespondWithEphemeralMessage(r, i, "❌ That menu has no channel configured")
	}

	if err := DeferEphemeral(r, i); err != nil {
		return err
	}

	if _, err := h.refreshMenus(ctx, r, name); err != nil {
		h.logger.Error("Failed to refresh menu", "menu", name, "error", err)
		return EditResponse(r, i, "❌ Error refreshing menu", nil, nil)
	}

	h.logAction(ctx, i, fmt.Sprintf("Refreshed %s menu", name), "")
	return EditResponse(r, i, fmt.Sprintf("✅ Refreshed %s menu", name), nil, nil)
}

// handleRefreshLeaderboard posts a fresh leaderboard from the admin panel
func (h *Handler) handleRefreshLeaderboard(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	if !h.isManagement(i) {
		return RespondWithEphemeralMessage(r, i, msgManagementNeeded)
	}
	return h.handlePostLeaderboard(ctx, r, i)
}

// logAction reports an interaction to the bot usage log channel, if one is set
func (h *Handler) logAction(ctx context.Context, i *discordgo.InteractionCreate, action, details string) {
	if h.channels.BotLogs == "" {
		return
	}

	n := renderUsageLog(h.caller(i), h.hasRole(i, h.hostRoleID), i.ChannelID, action, details, h.clock.Now())
	if err := h.messenger.SendChannelMessage(ctx, h.channels.BotLogs, n); err != nil {
		h.logger.Warn("Failed to post usage log", "channel_id", h.channels.BotLogs, "action", action, "error", err)
	}
}

package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	statsRepo "github.com/KirkDiggler/squadup/internal/repositories/stats"
	"github.com/bwmarrin/discordgo"
)

const (
	msgLeaderboardPosted   = "✅ Leaderboard posted!"
	msgLeaderboardNoTarget = "❌ Leaderboard channel not found!"
	msgLeaderboardFailed   = "❌ Error posting leaderboard!"

	// memberSearchLimit bounds the prefix search behind a player lookup
	memberSearchLimit = 25
)

func (h *Handler) handleMyStats(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	caller := h.caller(i)
	return h.respondWithStats(ctx, r, i, caller.ID, caller.DisplayName)
}

func (h *Handler) respondWithStats(ctx context.Context, r Responder, i *discordgo.InteractionCreate, userID, name string) error {
	st, err := h.stats.GetStats(ctx, &statsRepo.GetStatsInput{UserID: userID})
	if err != nil {
		h.logger.Error("Failed to read stats", "user_id", userID, "error", err)
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}
	return RespondWithNotice(r, i, renderStats(name, st), nil, true)
}

// leaderboard builds the ranked notice, resolving display names one by one
func (h *Handler) leaderboard(ctx context.Context, guildID, requestedBy string) (*models.Notice, error) {
	out, err := h.stats.GetLeaderboard(ctx, &statsRepo.GetLeaderboardInput{Limit: statsRepo.DefaultLeaderboardLimit})
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(out.Entries))
	for _, e := range out.Entries {
		names[e.Stats.UserID] = h.displayName(ctx, guildID, e.Stats.UserID)
	}

	return renderLeaderboard(out.Entries, names, requestedBy, h.clock.Now()), nil
}

// handlePostLeaderboard posts the leaderboard publicly and confirms privately
func (h *Handler) handlePostLeaderboard(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	if h.channels.Leaderboard == "" {
		return RespondWithEphemeralMessage(r, i, msgLeaderboardNoTarget)
	}

	n, err := h.leaderboard(ctx, i.GuildID, h.caller(i).DisplayName)
	if err != nil {
		h.logger.Error("Failed to build leaderboard", "error", err)
		return RespondWithEphemeralMessage(r, i, msgLeaderboardFailed)
	}

	if err := h.messenger.SendChannelMessage(ctx, h.channels.Leaderboard, n); err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			return RespondWithEphemeralMessage(r, i, msgLeaderboardNoTarget)
		}
		h.logger.Error("Failed to post leaderboard", "channel_id", h.channels.Leaderboard, "error", err)
		return RespondWithEphemeralMessage(r, i, msgLeaderboardFailed)
	}

	h.logAction(ctx, i, "Posted leaderboard", "Posted new leaderboard to public channel")
	return RespondWithEphemeralMessage(r, i, msgLeaderboardPosted)
}

func (h *Handler) openPlayerLookup(r Responder, i *discordgo.InteractionCreate) error {
	return RespondWithModal(r, i, ModalPlayerLookup, "Player Stats Lookup", discordgo.TextInput{
		CustomID:    InputPlayerName,
		Label:       "Player Name",
		Style:       discordgo.TextInputShort,
		Placeholder: "Enter the player's username or mention them (@username)",
		Required:    true,
		MaxLength:   100,
	})
}

func (h *Handler) handlePlayerLookup(ctx context.Context, r Responder, i *discordgo.InteractionCreate, input string) error {
	query := strings.TrimPrefix(strings.TrimSpace(input), "@")
	if query == "" {
		return RespondWithEphemeralMessage(r, i, fmt.Sprintf("❌ Could not find player '%s'. Try using their exact username.", query))
	}

	m, err := h.findMember(ctx, i.GuildID, query)
	if err != nil {
		h.logger.Error("Failed to search members", "query", query, "error", err)
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}
	if m == nil {
		return RespondWithEphemeralMessage(r, i, fmt.Sprintf("❌ Could not find player '%s'. Try using their exact username.", query))
	}

	return h.respondWithStats(ctx, r, i, m.ID, m.DisplayName)
}

// findMember returns the member whose display name or username equals query,
// ignoring case. The platform search is only a prefix match.
func (h *Handler) findMember(ctx context.Context, guildID, query string) (*models.Member, error) {
	found, err := h.members.SearchMembers(ctx, guildID, query, memberSearchLimit)
	if err != nil {
		return nil, err
	}
	for _, m := range found {
		if strings.EqualFold(m.DisplayName, query) || strings.EqualFold(m.Username, query) {
			return m, nil
		}
	}
	return nil, nil
}

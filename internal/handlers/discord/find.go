package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/squadup/internal/services/matchmaking"
	"github.com/bwmarrin/discordgo"
)

const (
	msgInvalidRegion = "❌ Invalid region selected."
	msgRoleNotFound  = "❌ Regional role not found. Please contact an administrator."
	msgFindFailed    = "❌ An error occurred while finding players."
)

// handleFindRegion shows the locations of the clicked region
func (h *Handler) handleFindRegion(r Responder, i *discordgo.InteractionCreate, regionKey string) error {
	region, ok := matchmaking.LookupRegion(regionKey)
	if !ok {
		return RespondWithEphemeralMessage(r, i, msgInvalidRegion)
	}

	n, components := renderLocationMenu(region)
	return RespondWithNotice(r, i, n, components, true)
}

// handleFindLocation notifies the region's players. DMs are paced, so the
// reply is deferred and rewritten once the recipients are known.
func (h *Handler) handleFindLocation(ctx context.Context, r Responder, i *discordgo.InteractionCreate, locationKey string) error {
	region, location, ok := matchmaking.RegionOfLocation(locationKey)
	if !ok {
		return RespondWithEphemeralMessage(r, i, msgInvalidRegion)
	}

	if err := DeferEphemeral(r, i); err != nil {
		return fmt.Errorf("failed to acknowledge find: %w", err)
	}

	out, err := h.matchmaking.FindPlayers(ctx, &matchmaking.FindPlayersInput{
		GuildID:   i.GuildID,
		GuildName: h.guildName(i.GuildID),
		Region:    region.Key,
		Location:  location.Key,
		Requester: h.caller(i),
		OnTargeted: func(targeted int) {
			if err := EditResponse(r, i, lookingMessage(region, &location, targeted), nil, nil); err != nil {
				h.logger.Warn("Failed to update find reply", "error", err)
			}
		},
	})
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, matchmaking.ErrUnknownRegion), errors.Is(err, matchmaking.ErrUnknownLocation):
			msg = msgInvalidRegion
		case errors.Is(err, matchmaking.ErrRoleNotFound):
			msg = msgRoleNotFound
		case errors.Is(err, matchmaking.ErrNoPlayersInRegion):
			msg = fmt.Sprintf("❌ No players found in the %s region.", region.Label)
		default:
			h.logger.Error("Failed to find players", "region", region.Key, "error", err)
			msg = msgFindFailed
		}
		return EditResponse(r, i, msg, nil, nil)
	}

	h.logger.Info("Players notified",
		"region", region.Key,
		"location", location.Key,
		"targeted", out.Targeted,
		"delivered", out.Delivered,
		"failed", out.Failed)

	return nil
}

// guildName is best-effort, the interaction only carries the guild ID
func (h *Handler) guildName(guildID string) string {
	if h.guilds != nil {
		if name := h.guilds.GuildName(guildID); name != "" {
			return name
		}
	}
	return "the server"
}

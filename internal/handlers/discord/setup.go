package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	"github.com/KirkDiggler/squadup/internal/services/profile"
	"github.com/bwmarrin/discordgo"
)

const (
	msgAdminOnly       = "❌ Only the bot admin can use this feature."
	msgInvalidHostID   = "❌ Invalid user ID. Please enter a valid Discord user ID (numbers only)."
	msgInvalidName     = "❌ Invalid in-game name. It must be 1 to 50 characters."
	msgHostSetupFailed = "❌ An error occurred while setting up the host."
	msgInvalidLimit    = "❌ Invalid number format for results limit"
	msgSearchFailed    = "❌ Error performing search"
)

func (h *Handler) openHostSetup(r Responder, i *discordgo.InteractionCreate) error {
	if !h.isAdmin(i) {
		return RespondWithEphemeralMessage(r, i, msgAdminOnly)
	}

	return RespondWithModal(r, i, ModalHostSetup, "Host Setup",
		discordgo.TextInput{
			CustomID:    InputHostID,
			Label:       "Host User ID",
			Style:       discordgo.TextInputShort,
			Placeholder: "Enter the Discord user ID of the host",
			Required:    true,
			MaxLength:   profile.MaxUserIDLength,
		},
		discordgo.TextInput{
			CustomID:    InputInGameName,
			Label:       "In-Game Name",
			Style:       discordgo.TextInputShort,
			Placeholder: "Enter the host's in-game name",
			Required:    true,
			MaxLength:   profile.MaxInGameNameLength,
		},
	)
}

func (h *Handler) handleHostSetup(ctx context.Context, r Responder, i *discordgo.InteractionCreate, hostID, name string) error {
	// the modal can outlive a change of admin
	if !h.isAdmin(i) {
		return RespondWithEphemeralMessage(r, i, msgAdminOnly)
	}

	out, err := h.profiles.SetupHost(ctx, &profile.SetupHostInput{
		GuildID:    i.GuildID,
		HostID:     hostID,
		InGameName: name,
	})
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrInvalidUserID):
			return RespondWithEphemeralMessage(r, i, msgInvalidHostID)
		case errors.Is(err, profile.ErrInvalidInGameName):
			return RespondWithEphemeralMessage(r, i, msgInvalidName)
		}
		h.logger.Error("Failed to set up host", "host_id", hostID, "error", err)
		return RespondWithEphemeralMessage(r, i, msgHostSetupFailed)
	}

	h.logger.Info("Host set up",
		"host_id", out.Profile.UserID,
		"by", h.caller(i).ID,
		"role_assigned", out.RoleAssigned)
	h.logAction(ctx, i, "Set up host", fmt.Sprintf("Host: %s (%s)", out.Profile.InGameName, out.Profile.UserID))

	return RespondWithNotice(r, i, renderHostAdded(out.Profile), nil, true)
}

func (h *Handler) openGameSearch(r Responder, i *discordgo.InteractionCreate) error {
	if !h.isManagement(i) {
		return RespondWithEphemeralMessage(r, i, msgManagementNeeded)
	}

	return RespondWithModal(r, i, ModalGameSearch, "Game Search",
		discordgo.TextInput{
			CustomID:    InputSearchTerm,
			Label:       "Search Term",
			Style:       discordgo.TextInputShort,
			Placeholder: "Enter player name, game number, or 'all' for recent games",
			Required:    true,
			MaxLength:   100,
		},
		discordgo.TextInput{
			CustomID:    InputLimit,
			Label:       "Number of Results",
			Style:       discordgo.TextInputShort,
			Placeholder: fmt.Sprintf("Enter number of results (default: %d, max: %d)", gamelogRepo.DefaultSearchLimit, gamelogRepo.MaxSearchLimit),
			Value:       strconv.Itoa(gamelogRepo.DefaultSearchLimit),
			Required:    false,
			MaxLength:   2,
		},
	)
}

func (h *Handler) handleGameSearchSubmit(ctx context.Context, r Responder, i *discordgo.InteractionCreate, query, rawLimit string) error {
	if !h.isManagement(i) {
		return RespondWithEphemeralMessage(r, i, msgManagementNeeded)
	}

	limit := 0
	if rawLimit = strings.TrimSpace(rawLimit); rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil {
			return RespondWithEphemeralMessage(r, i, msgInvalidLimit)
		}
		limit = n
	}

	return h.respondWithSearch(ctx, r, i, query, limit)
}

// respondWithSearch runs a game log search and renders the matches
func (h *Handler) respondWithSearch(ctx context.Context, r Responder, i *discordgo.InteractionCreate, query string, limit int) error {
	query = strings.ToLower(strings.TrimSpace(query))

	out, err := h.gameLog.Search(ctx, &gamelogRepo.SearchInput{Query: query, Limit: limit})
	if err != nil {
		h.logger.Error("Failed to search game log", "query", query, "error", err)
		return RespondWithEphemeralMessage(r, i, msgSearchFailed)
	}

	if len(out.Entries) == 0 {
		return RespondWithEphemeralMessage(r, i, fmt.Sprintf("❌ No games found matching '%s'", query))
	}

	h.logger.Info("Game search performed",
		"user_id", h.caller(i).ID,
		"query", query,
		"results", len(out.Entries))
	h.logAction(ctx, i, "Searched games", fmt.Sprintf("Query: %s, Results: %d", query, len(out.Entries)))

	return RespondWithNotice(r, i, renderSearchResults(query, out.Entries), nil, true)
}

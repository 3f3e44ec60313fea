package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	"github.com/KirkDiggler/squadup/internal/services/draft"
	"github.com/KirkDiggler/squadup/internal/services/game"
	"github.com/KirkDiggler/squadup/internal/services/profile"
	"github.com/bwmarrin/discordgo"
)

const (
	msgNotInVoice       = "❌ You must be in a voice channel to create a game!"
	msgOddPlayers       = "❌ You need an even number of players to create balanced teams!"
	msgTooManyPlayers   = "❌ Too many players in your voice channel for one game!"
	msgNotWhitelisted   = "❌ You need a host profile to create games. Ask an admin to set you up."
	msgDraftExpired     = "❌ This draft has expired. Create a new one."
	msgStartFailed      = "❌ Failed to create game channels. Please try again."
	msgGameGone         = "❌ This game is no longer active."
	msgGenericError     = "❌ Error processing request. Please try again."
	msgManagementNeeded = "❌ Management role required"
)

// handleCreateGame drafts teams from everyone in the caller's voice channel
func (h *Handler) handleCreateGame(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	caller := h.caller(i)

	if h.requireWhitelist {
		ok, err := h.profiles.IsWhitelisted(ctx, &profile.IsWhitelistedInput{UserID: caller.ID})
		if err != nil {
			h.logger.Error("Failed to check whitelist", "user_id", caller.ID, "error", err)
			return RespondWithEphemeralMessage(r, i, msgGenericError)
		}
		if !ok {
			return RespondWithEphemeralMessage(r, i, msgNotWhitelisted)
		}
	}

	channelID, err := h.voice.MemberChannel(ctx, i.GuildID, caller.ID)
	if err != nil {
		h.logger.Error("Failed to read voice state", "user_id", caller.ID, "error", err)
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}
	if channelID == "" {
		return RespondWithEphemeralMessage(r, i, msgNotInVoice)
	}

	participants, err := h.voiceParticipants(ctx, i.GuildID, channelID)
	if err != nil {
		h.logger.Error("Failed to list voice channel members", "channel_id", channelID, "error", err)
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}

	out, err := h.drafts.CreateDraft(ctx, &draft.CreateDraftInput{
		GuildID:          i.GuildID,
		VoiceChannelID:   channelID,
		VoiceChannelName: h.channelName(ctx, i.GuildID, channelID),
		RequestedBy:      caller.ID,
		Participants:     participants,
	})
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrNotEnoughPlayers):
			return RespondWithEphemeralMessage(r, i, fmt.Sprintf("❌ You need at least %d players to start a game!", h.minPlayers))
		case errors.Is(err, draft.ErrOddParticipants):
			return RespondWithEphemeralMessage(r, i, msgOddPlayers)
		case errors.Is(err, draft.ErrTooManyPlayers):
			return RespondWithEphemeralMessage(r, i, msgTooManyPlayers)
		}
		h.logger.Error("Failed to create draft", "channel_id", channelID, "error", err)
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}

	h.logger.Info("Draft created",
		"draft_id", out.Draft.ID,
		"guild_id", i.GuildID,
		"players", len(participants))

	n, components := renderDraft(out.Draft, false)
	return RespondWithNotice(r, i, n, components, false)
}

// voiceParticipants resolves everyone connected to a channel, skipping bots
// and members who left between the two lookups
func (h *Handler) voiceParticipants(ctx context.Context, guildID, channelID string) ([]*models.Member, error) {
	ids, err := h.voice.ChannelMembers(ctx, guildID, channelID)
	if err != nil {
		return nil, err
	}

	participants := make([]*models.Member, 0, len(ids))
	for _, id := range ids {
		m, err := h.members.Member(ctx, guildID, id)
		if err != nil {
			if errors.Is(err, platform.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if m.Bot {
			continue
		}
		participants = append(participants, m)
	}
	return participants, nil
}

func (h *Handler) channelName(ctx context.Context, guildID, channelID string) string {
	channels, err := h.voice.ListVoiceChannels(ctx, guildID)
	if err != nil {
		h.logger.Warn("Failed to list voice channels", "guild_id", guildID, "error", err)
		return "Game"
	}
	for _, c := range channels {
		if c.ID == channelID {
			return c.Name
		}
	}
	return "Game"
}

func (h *Handler) handleDraftAction(ctx context.Context, r Responder, i *discordgo.InteractionCreate, action, draftID string) error {
	switch action {
	case ActionDraftCancel:
		if err := h.drafts.CancelDraft(ctx, &draft.CancelDraftInput{DraftID: draftID}); err != nil && !errors.Is(err, draft.ErrDraftNotFound) {
			h.logger.Error("Failed to cancel draft", "draft_id", draftID, "error", err)
			return RespondWithEphemeralMessage(r, i, msgGenericError)
		}
		return UpdateWithNotice(r, i, renderDraftCancelled(), nil)

	case ActionDraftReroll:
		out, err := h.drafts.RerollDraft(ctx, &draft.RerollDraftInput{DraftID: draftID})
		if err != nil {
			if errors.Is(err, draft.ErrDraftNotFound) || errors.Is(err, draft.ErrDraftExpired) {
				return RespondWithEphemeralMessage(r, i, msgDraftExpired)
			}
			h.logger.Error("Failed to reroll draft", "draft_id", draftID, "error", err)
			return RespondWithEphemeralMessage(r, i, msgGenericError)
		}
		n, components := renderDraft(out.Draft, true)
		return UpdateWithNotice(r, i, n, components)

	default:
		return h.handleStartGame(ctx, r, i, draftID)
	}
}

// handleStartGame claims the draft and provisions the game. Room creation and
// player moves take a while, so the click is acknowledged first.
func (h *Handler) handleStartGame(ctx context.Context, r Responder, i *discordgo.InteractionCreate, draftID string) error {
	taken, err := h.drafts.TakeDraft(ctx, &draft.TakeDraftInput{DraftID: draftID})
	if err != nil {
		if errors.Is(err, draft.ErrDraftNotFound) || errors.Is(err, draft.ErrDraftExpired) {
			return RespondWithEphemeralMessage(r, i, msgDraftExpired)
		}
		h.logger.Error("Failed to take draft", "draft_id", draftID, "error", err)
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}

	if err := DeferUpdate(r, i); err != nil {
		return fmt.Errorf("failed to acknowledge start: %w", err)
	}

	d := taken.Draft
	out, err := h.games.StartGame(ctx, &game.StartGameInput{
		GuildID:          d.GuildID,
		VoiceChannelName: d.VoiceChannelName,
		Team1:            d.Team1,
		Team2:            d.Team2,
		StartedBy:        h.caller(i).ID,
	})
	if err != nil {
		h.logger.Error("Failed to start game", "draft_id", draftID, "error", err)
		return FollowupEphemeral(r, i, msgStartFailed)
	}

	for _, w := range out.Warnings {
		h.logger.Warn("Game started with warning", "game_id", out.Game.ID, "warning", w)
	}

	n, components := renderGameStarted(out)
	return EditResponse(r, i, "", n, components)
}

func (h *Handler) handleEndGame(ctx context.Context, r Responder, i *discordgo.InteractionCreate, gameID, rawOutcome string) error {
	value, err := strconv.Atoi(rawOutcome)
	if err != nil || !models.Outcome(value).IsValid() {
		return fmt.Errorf("%w: outcome %q", ErrMalformedCustomID, rawOutcome)
	}
	outcome := models.Outcome(value)

	if err := DeferUpdate(r, i); err != nil {
		return fmt.Errorf("failed to acknowledge end: %w", err)
	}

	out, err := h.games.EndGame(ctx, &game.EndGameInput{
		GameID:  gameID,
		Outcome: outcome,
		EndedBy: h.caller(i).ID,
	})
	if err != nil {
		if errors.Is(err, game.ErrGameNotFound) {
			return FollowupEphemeral(r, i, msgGameGone)
		}
		h.logger.Error("Failed to end game", "game_id", gameID, "error", err)
		return FollowupEphemeral(r, i, msgGenericError)
	}

	for _, w := range out.Warnings {
		h.logger.Warn("Game ended with warning", "game_id", gameID, "warning", w)
	}

	return EditResponse(r, i, "", renderGameEnded(out.Game, outcome), nil)
}

func (h *Handler) handleViewGames(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	out, err := h.games.ListGames(ctx, &game.ListGamesInput{GuildID: i.GuildID})
	if err != nil {
		h.logger.Error("Failed to list games", "guild_id", i.GuildID, "error", err)
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}
	return RespondWithNotice(r, i, renderActiveGames(out.Games), nil, true)
}

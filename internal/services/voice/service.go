package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/squadup/internal/common/pacer"
	"github.com/KirkDiggler/squadup/internal/metrics"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
)

// Config holds configuration for the voice service
type Config struct {
	// Rooms is the platform's voice channel API
	Rooms platform.VoiceRooms

	// Pacer spaces out member moves
	Pacer pacer.Pacer

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Metrics is optional
	Metrics *metrics.Metrics
}

type service struct {
	rooms   platform.VoiceRooms
	pacer   pacer.Pacer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a new voice service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Rooms == nil {
		return nil, ErrNilRooms
	}

	if cfg.Pacer == nil {
		return nil, ErrNilPacer
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		rooms:   cfg.Rooms,
		pacer:   cfg.Pacer,
		logger:  logger,
		metrics: cfg.Metrics,
	}, nil
}

// Provision creates the rooms first and only then moves players. If any room
// cannot be created the ones that were are deleted again.
func (s *service) Provision(ctx context.Context, input *ProvisionInput) (*ProvisionOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	rooms, err := s.createRooms(ctx, input)
	if err != nil {
		return nil, err
	}

	out := &ProvisionOutput{Rooms: rooms}
	s.moveTeam(ctx, input.GuildID, input.Team1, rooms.Team1ChannelID, out)
	s.moveTeam(ctx, input.GuildID, input.Team2, rooms.Team2ChannelID, out)

	s.logger.Info("Provisioned game rooms",
		"guild_id", input.GuildID,
		"category_id", rooms.CategoryID,
		"moved", out.Moved,
		"skipped", out.Skipped,
		"move_failures", out.MoveFailures)

	return out, nil
}

func (s *service) createRooms(ctx context.Context, input *ProvisionInput) (models.GameRooms, error) {
	var rooms models.GameRooms

	fail := func(step string, err error) (models.GameRooms, error) {
		s.metrics.PlatformFailure(metrics.OpCreateRoom)
		s.logger.Error("Failed to create game room",
			"guild_id", input.GuildID, "step", step, "error", err)
		s.compensate(ctx, rooms)
		return models.GameRooms{}, fmt.Errorf("%w: %s: %w", ErrProvisionFailed, step, err)
	}

	category, err := s.rooms.CreateCategory(ctx, input.GuildID, CategoryName(input.ChannelName))
	if err != nil {
		return fail("category", err)
	}
	rooms.CategoryID = category.ID

	team1, err := s.rooms.CreateVoiceChannel(ctx, input.GuildID, category.ID, Team1RoomName)
	if err != nil {
		return fail("team 1 room", err)
	}
	rooms.Team1ChannelID = team1.ID

	team2, err := s.rooms.CreateVoiceChannel(ctx, input.GuildID, category.ID, Team2RoomName)
	if err != nil {
		return fail("team 2 room", err)
	}
	rooms.Team2ChannelID = team2.ID

	return rooms, nil
}

// compensate deletes whatever part of a failed provisioning exists, children first
func (s *service) compensate(ctx context.Context, rooms models.GameRooms) {
	for _, id := range []string{rooms.Team1ChannelID, rooms.Team2ChannelID, rooms.CategoryID} {
		if id == "" {
			continue
		}
		if err := s.rooms.DeleteChannel(ctx, id); err != nil && !errors.Is(err, platform.ErrNotFound) {
			s.metrics.PlatformFailure(metrics.OpDeleteRoom)
			s.logger.Error("Failed to remove partially created room", "channel_id", id, "error", err)
		}
	}
}

func (s *service) moveTeam(ctx context.Context, guildID string, team []string, channelID string, out *ProvisionOutput) {
	for _, userID := range team {
		current, err := s.rooms.MemberChannel(ctx, guildID, userID)
		if err != nil {
			out.MoveFailures++
			s.metrics.PlatformFailure(metrics.OpMoveMember)
			s.logger.Warn("Failed to look up voice state", "user_id", userID, "error", err)
			continue
		}
		if current == "" {
			out.Skipped++
			continue
		}

		err = s.pacer.Do(ctx, func(ctx context.Context) error {
			return s.rooms.MoveMember(ctx, guildID, userID, channelID)
		})
		if err != nil {
			out.MoveFailures++
			s.metrics.PlatformFailure(metrics.OpMoveMember)
			s.logger.Warn("Failed to move player to team room",
				"user_id", userID, "channel_id", channelID, "error", err)
			continue
		}
		out.Moved++
	}
}

// Teardown moves occupants out, then deletes both rooms and the category
func (s *service) Teardown(ctx context.Context, input *TeardownInput) (*TeardownOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrInvalidInput
	}

	out := &TeardownOutput{}
	rooms := input.Rooms

	fallback, err := s.fallbackChannel(ctx, input.GuildID, rooms)
	if err != nil {
		out.Errors = append(out.Errors, fmt.Errorf("list voice channels: %w", err))
		s.metrics.PlatformFailure(metrics.OpListChannels)
		s.logger.Warn("Failed to find a fallback room, occupants will be disconnected", "error", err)
	}
	out.FallbackChannelID = fallback

	for _, roomID := range []string{rooms.Team1ChannelID, rooms.Team2ChannelID} {
		if roomID == "" {
			continue
		}
		s.emptyRoom(ctx, input.GuildID, roomID, fallback, out)
		s.deleteChannel(ctx, roomID, out)
	}

	if rooms.CategoryID != "" {
		s.deleteChannel(ctx, rooms.CategoryID, out)
	}

	if len(out.Errors) > 0 {
		s.logger.Warn("Game room teardown finished with errors",
			"guild_id", input.GuildID,
			"category_id", rooms.CategoryID,
			"errors", len(out.Errors))
	}

	return out, nil
}

// fallbackChannel picks the first voice channel that is not part of any game
func (s *service) fallbackChannel(ctx context.Context, guildID string, rooms models.GameRooms) (string, error) {
	channels, err := s.rooms.ListVoiceChannels(ctx, guildID)
	if err != nil {
		return "", err
	}

	for _, ch := range channels {
		if rooms.CategoryID != "" && ch.ParentID == rooms.CategoryID {
			continue
		}
		if ch.ID == rooms.Team1ChannelID || ch.ID == rooms.Team2ChannelID {
			continue
		}
		if strings.HasPrefix(ch.Name, Team1Marker) || strings.HasPrefix(ch.Name, Team2Marker) {
			continue
		}
		return ch.ID, nil
	}

	return "", nil
}

func (s *service) emptyRoom(ctx context.Context, guildID, roomID, fallback string, out *TeardownOutput) {
	occupants, err := s.rooms.ChannelMembers(ctx, guildID, roomID)
	if err != nil {
		if !errors.Is(err, platform.ErrNotFound) {
			out.Errors = append(out.Errors, fmt.Errorf("list members of %s: %w", roomID, err))
			s.metrics.PlatformFailure(metrics.OpListChannels)
		}
		return
	}

	for _, userID := range occupants {
		err := s.pacer.Do(ctx, func(ctx context.Context) error {
			return s.rooms.MoveMember(ctx, guildID, userID, fallback)
		})
		if err != nil {
			out.Errors = append(out.Errors, fmt.Errorf("move %s out of %s: %w", userID, roomID, err))
			s.metrics.PlatformFailure(metrics.OpMoveMember)
			continue
		}
		if fallback == "" {
			out.Disconnected++
		} else {
			out.Relocated++
		}
	}
}

func (s *service) deleteChannel(ctx context.Context, channelID string, out *TeardownOutput) {
	err := s.rooms.DeleteChannel(ctx, channelID)
	if err == nil || errors.Is(err, platform.ErrNotFound) {
		return
	}

	out.Errors = append(out.Errors, fmt.Errorf("delete %s: %w", channelID, err))
	s.metrics.PlatformFailure(metrics.OpDeleteRoom)
	s.logger.Warn("Failed to delete game room", "channel_id", channelID, "error", err)
}

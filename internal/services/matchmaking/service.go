package matchmaking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/squadup/internal/common/clock"
	"github.com/KirkDiggler/squadup/internal/common/pacer"
	"github.com/KirkDiggler/squadup/internal/metrics"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	"github.com/KirkDiggler/squadup/internal/services/profile"
)

// Config holds configuration for the matchmaking service
type Config struct {
	Roles     platform.RoleDirectory
	Messenger platform.Messenger

	// Pacer spaces out DMs
	Pacer pacer.Pacer

	// Profiles resolves the requester's in-game name
	Profiles profile.Service

	// RegionRoles maps region keys to role IDs
	RegionRoles map[string]string

	Clock   clock.Clock
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

type service struct {
	roles       platform.RoleDirectory
	messenger   platform.Messenger
	pacer       pacer.Pacer
	profiles    profile.Service
	regionRoles map[string]string
	clock       clock.Clock
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// New creates a new matchmaking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roles == nil {
		return nil, ErrNilRoleDirectory
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}
	if cfg.Pacer == nil {
		return nil, ErrNilPacer
	}
	if cfg.Profiles == nil {
		return nil, ErrNilProfileService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	roles := make(map[string]string, len(cfg.RegionRoles))
	for k, v := range cfg.RegionRoles {
		roles[k] = v
	}

	return &service{
		roles:       cfg.Roles,
		messenger:   cfg.Messenger,
		pacer:       cfg.Pacer,
		profiles:    cfg.Profiles,
		regionRoles: roles,
		clock:       cfg.Clock,
		logger:      logger,
		metrics:     cfg.Metrics,
	}, nil
}

// FindPlayers resolves the region role and DMs its members one at a time
func (s *service) FindPlayers(ctx context.Context, input *FindPlayersInput) (*FindPlayersOutput, error) {
	if input == nil || input.Requester == nil {
		return nil, ErrInvalidRequester
	}

	region, ok := LookupRegion(input.Region)
	if !ok {
		return nil, ErrUnknownRegion
	}

	var location *Location
	if input.Location != "" {
		l, ok := region.LookupLocation(input.Location)
		if !ok {
			return nil, ErrUnknownLocation
		}
		location = &l
	}

	roleID := s.regionRoles[region.Key]
	if roleID == "" {
		return nil, ErrUnknownRegion
	}

	members, err := s.roles.RoleMembers(ctx, input.GuildID, roleID)
	if err != nil {
		s.metrics.PlatformFailure(metrics.OpListMembers)
		return nil, fmt.Errorf("%w: %w", ErrRoleNotFound, err)
	}

	var players []*models.Member
	for _, m := range members {
		if m == nil || m.Bot {
			continue
		}
		players = append(players, m)
	}
	if len(players) == 0 {
		return nil, ErrNoPlayersInRegion
	}

	recipients := make([]*models.Member, 0, len(players))
	for _, m := range players {
		if m.ID != input.Requester.ID {
			recipients = append(recipients, m)
		}
	}

	out := &FindPlayersOutput{
		Region:   region,
		Location: location,
		Targeted: len(recipients),
	}

	if input.OnTargeted != nil {
		input.OnTargeted(out.Targeted)
	}

	name, err := s.profiles.InGameName(ctx, &profile.InGameNameInput{UserID: input.Requester.ID})
	if err != nil {
		s.logger.Warn("Failed to look up in-game name", "user_id", input.Requester.ID, "error", err)
	}

	notice := lookingNotice(input, region, location, name, s.clock.Now())

	for _, m := range recipients {
		err := s.pacer.Do(ctx, func(ctx context.Context) error {
			return s.messenger.SendDirectMessage(ctx, m.ID, notice)
		})
		if err != nil {
			if ctx.Err() != nil {
				// remaining recipients are never reached
				out.Failed += len(recipients) - out.Delivered - out.Failed
				break
			}
			out.Failed++
			s.metrics.NotificationFailed()
			s.logger.Debug("Failed to DM player", "user_id", m.ID, "error", err)
			continue
		}
		out.Delivered++
		s.metrics.NotificationDelivered()
	}

	s.logger.Info("Region find notification",
		"region", region.Key,
		"location", input.Location,
		"requester", input.Requester.ID,
		"delivered", out.Delivered,
		"failed", out.Failed)

	summaryCtx := context.WithoutCancel(ctx)
	if err := s.messenger.SendDirectMessage(summaryCtx, input.Requester.ID, summaryNotice(region, out)); err != nil {
		s.logger.Warn("Failed to send results to requester", "user_id", input.Requester.ID, "error", err)
	}

	return out, nil
}

package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/squadup/internal/metrics"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	profileRepo "github.com/KirkDiggler/squadup/internal/repositories/profile"
)

// Config holds configuration for the profile service
type Config struct {
	// ProfileRepo stores profiles and the host whitelist
	ProfileRepo profileRepo.Repository

	// Roles grants the host role. Optional.
	Roles platform.RoleDirectory

	// HostRoleID is granted on setup. Empty skips role assignment.
	HostRoleID string

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Metrics is optional
	Metrics *metrics.Metrics
}

type service struct {
	repo       profileRepo.Repository
	roles      platform.RoleDirectory
	hostRoleID string
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// New creates a new profile service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		repo:       cfg.ProfileRepo,
		roles:      cfg.Roles,
		hostRoleID: cfg.HostRoleID,
		logger:     logger,
		metrics:    cfg.Metrics,
	}, nil
}

// SetupHost validates the form, then whitelists and saves before touching roles
func (s *service) SetupHost(ctx context.Context, input *SetupHostInput) (*SetupHostOutput, error) {
	if input == nil {
		return nil, ErrInvalidUserID
	}

	hostID, err := ParseUserID(input.HostID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.InGameName)
	if name == "" || utf8.RuneCountInString(name) > MaxInGameNameLength {
		return nil, ErrInvalidInGameName
	}

	if err := s.repo.AddHost(ctx, &profileRepo.AddHostInput{UserID: hostID}); err != nil {
		return nil, fmt.Errorf("failed to whitelist host: %w", err)
	}

	profile := &models.Profile{
		UserID:     hostID,
		InGameName: name,
		IsHost:     true,
	}
	if err := s.repo.SaveProfile(ctx, &profileRepo.SaveProfileInput{Profile: profile}); err != nil {
		return nil, fmt.Errorf("failed to save host profile: %w", err)
	}

	out := &SetupHostOutput{Profile: profile}

	if s.roles != nil && s.hostRoleID != "" && input.GuildID != "" {
		if err := s.roles.AddRole(ctx, input.GuildID, hostID, s.hostRoleID); err != nil {
			s.metrics.PlatformFailure(metrics.OpAssignRole)
			s.logger.Warn("Failed to grant host role", "user_id", hostID, "role_id", s.hostRoleID, "error", err)
		} else {
			out.RoleAssigned = true
		}
	}

	s.logger.Info("Host set up", "user_id", hostID, "in_game_name", name, "role_assigned", out.RoleAssigned)

	return out, nil
}

// IsWhitelisted checks the host whitelist first, then falls back to profiles
func (s *service) IsWhitelisted(ctx context.Context, input *IsWhitelistedInput) (bool, error) {
	if input == nil || input.UserID == "" {
		return false, nil
	}

	isHost, err := s.repo.IsHost(ctx, &profileRepo.IsHostInput{UserID: input.UserID})
	if err != nil {
		return false, fmt.Errorf("failed to check whitelist: %w", err)
	}
	if isHost {
		return true, nil
	}

	_, err = s.repo.GetProfile(ctx, &profileRepo.GetProfileInput{UserID: input.UserID})
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load profile: %w", err)
	}

	return true, nil
}

// InGameName returns UnknownName for users without a profile
func (s *service) InGameName(ctx context.Context, input *InGameNameInput) (string, error) {
	if input == nil || input.UserID == "" {
		return UnknownName, nil
	}

	profile, err := s.repo.GetProfile(ctx, &profileRepo.GetProfileInput{UserID: input.UserID})
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		return UnknownName, nil
	}
	if err != nil {
		return UnknownName, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile.InGameName == "" {
		return UnknownName, nil
	}
	return profile.InGameName, nil
}

// ParseUserID trims and validates a Discord user ID
func ParseUserID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > MaxUserIDLength {
		return "", ErrInvalidUserID
	}

	// snowflakes are unsigned 64-bit integers
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return "", ErrInvalidUserID
	}

	return strconv.FormatUint(n, 10), nil
}

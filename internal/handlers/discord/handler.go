package discord

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/squadup/internal/common/clock"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	statsRepo "github.com/KirkDiggler/squadup/internal/repositories/stats"
	"github.com/KirkDiggler/squadup/internal/services/draft"
	"github.com/KirkDiggler/squadup/internal/services/game"
	"github.com/KirkDiggler/squadup/internal/services/matchmaking"
	"github.com/KirkDiggler/squadup/internal/services/profile"
	"github.com/bwmarrin/discordgo"
)

// Channels are where the persistent menus and leaderboard posts go
type Channels struct {
	Drafts      string
	Find        string
	Stats       string
	HostSetup   string
	Leaderboard string

	// BotLogs receives a notice per administrative action. Empty disables it.
	BotLogs string
}

// GuildNamer resolves guild names for outgoing notices
type GuildNamer interface {
	GuildName(guildID string) string
}

// HandlerConfig holds the services the interaction handlers call into
type HandlerConfig struct {
	Drafts      draft.Service
	Games       game.Service
	Profiles    profile.Service
	Matchmaking matchmaking.Service

	// Stats and GameLog are read directly for lookups
	Stats   statsRepo.Repository
	GameLog gamelogRepo.Repository

	Voice     platform.VoiceRooms
	Members   platform.MemberDirectory
	Messenger platform.Messenger
	History   platform.ChannelHistory
	Clock     clock.Clock

	// Guilds is optional. Matchmaking DMs say "the server" without it.
	Guilds GuildNamer

	Channels Channels

	// ManagementRoleID grants access to menus and game search
	ManagementRoleID string

	// HostRoleID marks hosts in the usage log
	HostRoleID string

	// AdminUserID is the only user allowed to set up hosts
	AdminUserID string

	// RequireWhitelist limits game creation to hosts and profiled users
	RequireWhitelist bool

	// MinPlayers is echoed back when a voice channel is too empty
	MinPlayers int

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Handler routes interactions to the game services
type Handler struct {
	drafts      draft.Service
	games       game.Service
	profiles    profile.Service
	matchmaking matchmaking.Service
	stats       statsRepo.Repository
	gameLog     gamelogRepo.Repository
	voice       platform.VoiceRooms
	members     platform.MemberDirectory
	messenger   platform.Messenger
	history     platform.ChannelHistory
	clock       clock.Clock
	guilds      GuildNamer

	channels         Channels
	managementRoleID string
	hostRoleID       string
	adminUserID      string
	requireWhitelist bool
	minPlayers       int
	logger           *slog.Logger

	command *SquadCommand
}

// NewHandler creates the interaction handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.Drafts == nil:
		return nil, ErrNilDraftService
	case cfg.Games == nil:
		return nil, ErrNilGameService
	case cfg.Profiles == nil:
		return nil, ErrNilProfileService
	case cfg.Matchmaking == nil:
		return nil, ErrNilMatchmakingService
	case cfg.Stats == nil:
		return nil, ErrNilStatsRepo
	case cfg.GameLog == nil:
		return nil, ErrNilGameLogRepo
	case cfg.Voice == nil:
		return nil, ErrNilVoiceRooms
	case cfg.Members == nil:
		return nil, ErrNilMemberDirectory
	case cfg.Messenger == nil:
		return nil, ErrNilMessenger
	case cfg.History == nil:
		return nil, ErrNilChannelHistory
	case cfg.Clock == nil:
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		drafts:           cfg.Drafts,
		games:            cfg.Games,
		profiles:         cfg.Profiles,
		matchmaking:      cfg.Matchmaking,
		stats:            cfg.Stats,
		gameLog:          cfg.GameLog,
		voice:            cfg.Voice,
		members:          cfg.Members,
		messenger:        cfg.Messenger,
		history:          cfg.History,
		clock:            cfg.Clock,
		guilds:           cfg.Guilds,
		channels:         cfg.Channels,
		managementRoleID: cfg.ManagementRoleID,
		hostRoleID:       cfg.HostRoleID,
		adminUserID:      cfg.AdminUserID,
		requireWhitelist: cfg.RequireWhitelist,
		minPlayers:       cfg.MinPlayers,
		logger:           logger,
	}
	h.command = NewSquadCommand(h)

	return h, nil
}

// Commands returns the slash commands to register
func (h *Handler) Commands() []CommandHandler {
	return []CommandHandler{h.command}
}

// Handle routes one interaction
func (h *Handler) Handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == h.command.GetName() {
			return h.command.Handle(ctx, r, i)
		}
		return fmt.Errorf("%w: command %s", ErrUnknownInteraction, i.ApplicationCommandData().Name)
	case discordgo.InteractionMessageComponent:
		return h.handleComponent(ctx, r, i)
	case discordgo.InteractionModalSubmit:
		return h.handleModal(ctx, r, i)
	default:
		return nil
	}
}

func (h *Handler) handleComponent(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonCreateGame:
		return h.handleCreateGame(ctx, r, i)
	case ButtonViewGames:
		return h.handleViewGames(ctx, r, i)
	case ButtonMyStats:
		return h.handleMyStats(ctx, r, i)
	case ButtonLeaderboard:
		return h.handlePostLeaderboard(ctx, r, i)
	case ButtonPlayerLookup:
		return h.openPlayerLookup(r, i)
	case ButtonHostSetup:
		return h.openHostSetup(r, i)
	case ButtonGameSearch:
		return h.openGameSearch(r, i)
	case ButtonRefreshLeaderboard:
		return h.handleRefreshLeaderboard(ctx, r, i)
	}

	action, args := DecodeID(customID)
	switch action {
	case ActionDraftCancel, ActionDraftReroll, ActionDraftStart:
		if len(args) != 1 {
			return fmt.Errorf("%w: %s", ErrMalformedCustomID, customID)
		}
		return h.handleDraftAction(ctx, r, i, action, args[0])
	case ActionGameEnd:
		if len(args) != 2 {
			return fmt.Errorf("%w: %s", ErrMalformedCustomID, customID)
		}
		return h.handleEndGame(ctx, r, i, args[0], args[1])
	case ActionFindRegion:
		if len(args) != 1 {
			return fmt.Errorf("%w: %s", ErrMalformedCustomID, customID)
		}
		return h.handleFindRegion(r, i, args[0])
	case ActionFindLocation:
		if len(args) != 1 {
			return fmt.Errorf("%w: %s", ErrMalformedCustomID, customID)
		}
		return h.handleFindLocation(ctx, r, i, args[0])
	case ActionRefreshMenu:
		if len(args) != 1 {
			return fmt.Errorf("%w: %s", ErrMalformedCustomID, customID)
		}
		return h.handleRefreshMenu(ctx, r, i, args[0])
	}

	return fmt.Errorf("%w: component %s", ErrUnknownInteraction, customID)
}

func (h *Handler) handleModal(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	values := modalValues(data)

	switch data.CustomID {
	case ModalPlayerLookup:
		return h.handlePlayerLookup(ctx, r, i, values[InputPlayerName])
	case ModalHostSetup:
		return h.handleHostSetup(ctx, r, i, values[InputHostID], values[InputInGameName])
	case ModalGameSearch:
		return h.handleGameSearchSubmit(ctx, r, i, values[InputSearchTerm], values[InputLimit])
	}

	return fmt.Errorf("%w: modal %s", ErrUnknownInteraction, data.CustomID)
}

// isAdmin reports whether the caller is the configured bot admin
func (h *Handler) isAdmin(i *discordgo.InteractionCreate) bool {
	m := interactionMember(i)
	return m != nil && h.adminUserID != "" && m.ID == h.adminUserID
}

// isManagement reports whether the caller holds the management role or is the admin
func (h *Handler) isManagement(i *discordgo.InteractionCreate) bool {
	return h.isAdmin(i) || h.hasRole(i, h.managementRoleID)
}

// hasRole reports whether the caller holds roleID
func (h *Handler) hasRole(i *discordgo.InteractionCreate, roleID string) bool {
	if i.Member == nil || roleID == "" {
		return false
	}
	return slices.Contains(i.Member.Roles, roleID)
}

// displayName resolves a user to a guild display name, falling back to the raw ID
func (h *Handler) displayName(ctx context.Context, guildID, userID string) string {
	m, err := h.members.Member(ctx, guildID, userID)
	if err != nil || m == nil {
		return "User " + userID
	}
	return m.DisplayName
}

func (h *Handler) caller(i *discordgo.InteractionCreate) *models.Member {
	if m := interactionMember(i); m != nil {
		return m
	}
	return &models.Member{}
}

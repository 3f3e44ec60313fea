package game

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/squadup/internal/common/clock"
	"github.com/KirkDiggler/squadup/internal/metrics"
	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/platform"
	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	statsRepo "github.com/KirkDiggler/squadup/internal/repositories/stats"
	"github.com/KirkDiggler/squadup/internal/services/voice"
)

// Config holds configuration for the game registry
type Config struct {
	// GameLogRepo numbers and records games
	GameLogRepo gamelogRepo.Repository

	// StatsRepo receives completed results
	StatsRepo statsRepo.Repository

	// Voice provisions and removes game rooms
	Voice voice.Service

	// Clock for start and end timestamps
	Clock clock.Clock

	// Messenger posts game log announcements. Optional.
	Messenger platform.Messenger

	// LogChannelID is where announcements go. Empty disables them.
	LogChannelID string

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Metrics is optional
	Metrics *metrics.Metrics
}

// entry is a registered game plus what the registry needs to finish it
type entry struct {
	game  *models.ActiveGame
	team1 []models.LogPlayer
	team2 []models.LogPlayer

	// finalizing is set by the first EndGame call. Later calls treat the game as gone.
	finalizing bool
}

// service implements the Service interface
type service struct {
	gameLogRepo  gamelogRepo.Repository
	statsRepo    statsRepo.Repository
	voice        voice.Service
	clock        clock.Clock
	messenger    platform.Messenger
	logChannelID string
	logger       *slog.Logger
	metrics      *metrics.Metrics

	mu    sync.Mutex
	games map[string]*entry
}

// New creates a new game registry
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameLogRepo == nil {
		return nil, ErrNilGameLogRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Voice == nil {
		return nil, ErrNilVoiceService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		gameLogRepo:  cfg.GameLogRepo,
		statsRepo:    cfg.StatsRepo,
		voice:        cfg.Voice,
		clock:        cfg.Clock,
		messenger:    cfg.Messenger,
		logChannelID: cfg.LogChannelID,
		logger:       logger,
		metrics:      cfg.Metrics,
		games:        make(map[string]*entry),
	}, nil
}

// StartGame provisions first so a failed start never consumes a game number
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if err := validateTeams(input); err != nil {
		return nil, err
	}

	team1, team2 := memberIDs(input.Team1), memberIDs(input.Team2)

	provisioned, err := s.voice.Provision(ctx, &voice.ProvisionInput{
		GuildID:     input.GuildID,
		ChannelName: input.VoiceChannelName,
		Team1:       team1,
		Team2:       team2,
	})
	if err != nil {
		s.metrics.GameStartFailed()
		return nil, fmt.Errorf("failed to provision game rooms: %w", err)
	}

	gameNumber, err := s.gameLogRepo.NextGameNumber(ctx)
	if err != nil {
		s.metrics.GameStartFailed()
		s.logger.Error("Failed to allocate game number", "guild_id", input.GuildID, "error", err)
		s.teardown(ctx, input.GuildID, provisioned.Rooms)
		return nil, fmt.Errorf("failed to allocate game number: %w", err)
	}

	now := s.clock.Now()
	game := &models.ActiveGame{
		ID:               models.GameID(input.GuildID, gameNumber),
		GameNumber:       gameNumber,
		GuildID:          input.GuildID,
		Team1:            team1,
		Team2:            team2,
		Rooms:            provisioned.Rooms,
		StartedBy:        input.StartedBy,
		VoiceChannelName: input.VoiceChannelName,
		StartedAt:        now,
	}
	record := &entry{
		game:  game,
		team1: logPlayers(input.Team1),
		team2: logPlayers(input.Team2),
	}

	var warnings []string
	logEntry := &models.GameLogEntry{
		GameNumber: gameNumber,
		Timestamp:  now,
		Status:     models.GameStatusStarted,
		Team1:      record.team1,
		Team2:      record.team2,
	}
	// the started entry exists before the game is visible to EndGame
	if err := s.gameLogRepo.AppendStart(ctx, &gamelogRepo.AppendStartInput{Entry: logEntry}); err != nil {
		s.metrics.PersistFailure("game_log")
		s.logger.Error("Failed to record game start", "game_id", game.ID, "error", err)
		warnings = append(warnings, "the game could not be written to the game log")
	}

	s.mu.Lock()
	if _, exists := s.games[game.ID]; exists {
		s.mu.Unlock()
		s.metrics.GameStartFailed()
		s.teardown(ctx, input.GuildID, provisioned.Rooms)
		return nil, ErrGameAlreadyExists
	}
	s.games[game.ID] = record
	active := len(s.games)
	s.mu.Unlock()

	s.metrics.GameStarted()
	s.metrics.SetActiveGames(active)

	out := &StartGameOutput{
		Game:         cloneGame(game),
		Moved:        provisioned.Moved,
		Skipped:      provisioned.Skipped,
		MoveFailures: provisioned.MoveFailures,
		Warnings:     warnings,
	}

	s.logger.Info("Game started",
		"game_id", game.ID,
		"started_by", input.StartedBy,
		"players", len(team1)+len(team2))

	s.announce(ctx, startedNotice(logEntry))

	return out, nil
}

// EndGame claims the game under the lock so concurrent calls cannot both finalize it
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	if !input.Outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	s.mu.Lock()
	record, ok := s.games[input.GameID]
	if !ok || record.finalizing {
		s.mu.Unlock()
		return nil, ErrGameNotFound
	}
	record.finalizing = true
	s.mu.Unlock()

	// finish even if the caller gives up, the claim cannot be released halfway
	ctx = context.WithoutCancel(ctx)
	game := record.game
	out := &EndGameOutput{Game: cloneGame(game)}

	if input.Outcome != models.OutcomeCancelled {
		winners, losers := game.Team1, game.Team2
		if input.Outcome == models.OutcomeTeam2Wins {
			winners, losers = losers, winners
		}

		err := s.statsRepo.RecordResult(ctx, &statsRepo.RecordResultInput{
			Winners: winners,
			Losers:  losers,
		})
		if err != nil {
			s.metrics.PersistFailure("stats")
			s.logger.Error("Failed to record game result", "game_id", game.ID, "error", err)
			out.Warnings = append(out.Warnings, "player stats could not be updated")
		}
	}

	finalized, err := s.gameLogRepo.Finalize(ctx, &gamelogRepo.FinalizeInput{
		GameNumber: game.GameNumber,
		Outcome:    input.Outcome,
		EndedAt:    s.clock.Now(),
	})
	if err != nil {
		s.metrics.PersistFailure("game_log")
		s.logger.Error("Failed to finalize game log entry", "game_id", game.ID, "error", err)
		out.Warnings = append(out.Warnings, "the game log could not be updated")
	}
	out.Entry = finalized

	teardown := s.teardown(ctx, game.GuildID, game.Rooms)
	if teardown != nil && len(teardown.Errors) > 0 {
		out.Warnings = append(out.Warnings, "some game rooms could not be cleaned up")
	}

	s.mu.Lock()
	delete(s.games, game.ID)
	active := len(s.games)
	s.mu.Unlock()

	s.metrics.GameEnded(outcomeLabel(input.Outcome))
	s.metrics.SetActiveGames(active)

	s.logger.Info("Game ended",
		"game_id", game.ID,
		"outcome", input.Outcome.String(),
		"ended_by", input.EndedBy,
		"warnings", len(out.Warnings))

	announced := finalized
	if announced == nil {
		announced = &models.GameLogEntry{
			GameNumber: game.GameNumber,
			Timestamp:  game.StartedAt,
			Team1:      record.team1,
			Team2:      record.team2,
		}
		announced.Resolve(input.Outcome, s.clock.Now())
	}
	s.announce(ctx, endedNotice(announced))

	return out, nil
}

// GetGame returns the game while it is registered, including while it is being finalized
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return &GetGameOutput{
		Game: cloneGame(record.game),
	}, nil
}

// ListGames returns copies of the registered games
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	guildID := ""
	if input != nil {
		guildID = input.GuildID
	}

	s.mu.Lock()
	games := make([]*models.ActiveGame, 0, len(s.games))
	for _, record := range s.games {
		if guildID != "" && record.game.GuildID != guildID {
			continue
		}
		games = append(games, cloneGame(record.game))
	}
	s.mu.Unlock()

	sort.Slice(games, func(i, j int) bool {
		return games[i].GameNumber < games[j].GameNumber
	})

	return &ListGamesOutput{
		Games: games,
	}, nil
}

func (s *service) teardown(ctx context.Context, guildID string, rooms models.GameRooms) *voice.TeardownOutput {
	out, err := s.voice.Teardown(context.WithoutCancel(ctx), &voice.TeardownInput{
		GuildID: guildID,
		Rooms:   rooms,
	})
	if err != nil {
		s.logger.Error("Failed to tear down game rooms", "guild_id", guildID, "category_id", rooms.CategoryID, "error", err)
		return &voice.TeardownOutput{Errors: []error{err}}
	}
	return out
}

func (s *service) announce(ctx context.Context, notice *models.Notice) {
	if s.messenger == nil || s.logChannelID == "" {
		return
	}

	if err := s.messenger.SendChannelMessage(ctx, s.logChannelID, notice); err != nil {
		s.metrics.PlatformFailure(metrics.OpSendMessage)
		s.logger.Warn("Failed to post game log announcement", "channel_id", s.logChannelID, "error", err)
	}
}

func validateTeams(input *StartGameInput) error {
	if input == nil {
		return ErrEmptyTeam
	}
	if input.GuildID == "" {
		return ErrInvalidGuild
	}
	if len(input.Team1) == 0 || len(input.Team2) == 0 {
		return ErrEmptyTeam
	}

	seen := make(map[string]bool, len(input.Team1)+len(input.Team2))
	for _, m := range append(append([]*models.Member{}, input.Team1...), input.Team2...) {
		if m == nil || m.ID == "" {
			return ErrEmptyMemberID
		}
		if seen[m.ID] {
			return ErrTeamsOverlap
		}
		seen[m.ID] = true
	}

	return nil
}

func memberIDs(members []*models.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

func logPlayers(members []*models.Member) []models.LogPlayer {
	players := make([]models.LogPlayer, len(members))
	for i, m := range members {
		players[i] = models.LogPlayer{ID: m.ID, Name: m.DisplayName}
	}
	return players
}

func outcomeLabel(o models.Outcome) string {
	switch o {
	case models.OutcomeTeam1Wins:
		return "team1"
	case models.OutcomeTeam2Wins:
		return "team2"
	default:
		return "cancelled"
	}
}

func cloneGame(g *models.ActiveGame) *models.ActiveGame {
	c := *g
	c.Team1 = append([]string(nil), g.Team1...)
	c.Team2 = append([]string(nil), g.Team2...)
	return &c
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/squadup/internal/common/clock"
	"github.com/KirkDiggler/squadup/internal/common/pacer"
	"github.com/KirkDiggler/squadup/internal/common/uuid"
	"github.com/KirkDiggler/squadup/internal/config"
	"github.com/KirkDiggler/squadup/internal/handlers/discord"
	"github.com/KirkDiggler/squadup/internal/httpapi"
	"github.com/KirkDiggler/squadup/internal/metrics"
	discordplatform "github.com/KirkDiggler/squadup/internal/platform/discord"
	"github.com/KirkDiggler/squadup/internal/services/draft"
	"github.com/KirkDiggler/squadup/internal/services/game"
	"github.com/KirkDiggler/squadup/internal/services/matchmaking"
	"github.com/KirkDiggler/squadup/internal/services/profile"
	"github.com/KirkDiggler/squadup/internal/services/voice"
	"github.com/KirkDiggler/squadup/internal/shuffle"
	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "connect to Discord and serve interactions",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if err := cfg.ValidateForRun(); err != nil {
				return err
			}

			logger, err := cfg.Log.NewLogger(os.Stderr)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logger)
		},
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := openStores(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("Failed to close storage", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	adapter, err := discordplatform.New(&discordplatform.Config{Session: session})
	if err != nil {
		return fmt.Errorf("failed to create platform adapter: %w", err)
	}

	systemClock := &clock.DefaultClock{}

	voiceSvc, err := voice.New(&voice.Config{
		Rooms:   adapter,
		Pacer:   pacer.New(&pacer.Config{Interval: cfg.Pacing.MoveInterval}),
		Logger:  logger.With("service", "voice"),
		Metrics: m,
	})
	if err != nil {
		return fmt.Errorf("failed to create voice service: %w", err)
	}

	draftSvc, err := draft.New(&draft.Config{
		Shuffler:      shuffle.New(nil),
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
		MinPlayers:    cfg.Game.MinPlayers,
		MaxPlayers:    cfg.Game.MaxPlayers,
		TTL:           cfg.Game.DraftTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create draft service: %w", err)
	}

	gameSvc, err := game.New(&game.Config{
		GameLogRepo:  st.gameLog,
		StatsRepo:    st.stats,
		Voice:        voiceSvc,
		Clock:        systemClock,
		Messenger:    adapter,
		LogChannelID: cfg.Channels.Log,
		Logger:       logger.With("service", "game"),
		Metrics:      m,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	profileSvc, err := profile.New(&profile.Config{
		ProfileRepo: st.profiles,
		Roles:       adapter,
		HostRoleID:  cfg.Roles.Host,
		Logger:      logger.With("service", "profile"),
		Metrics:     m,
	})
	if err != nil {
		return fmt.Errorf("failed to create profile service: %w", err)
	}

	matchmakingSvc, err := matchmaking.New(&matchmaking.Config{
		Roles:       adapter,
		Messenger:   adapter,
		Pacer:       pacer.New(&pacer.Config{Interval: cfg.Pacing.DMInterval}),
		Profiles:    profileSvc,
		RegionRoles: cfg.RegionRoles(),
		Clock:       systemClock,
		Logger:      logger.With("service", "matchmaking"),
		Metrics:     m,
	})
	if err != nil {
		return fmt.Errorf("failed to create matchmaking service: %w", err)
	}

	handler, err := discord.NewHandler(&discord.HandlerConfig{
		Drafts:      draftSvc,
		Games:       gameSvc,
		Profiles:    profileSvc,
		Matchmaking: matchmakingSvc,
		Stats:       st.stats,
		GameLog:     st.gameLog,
		Voice:       adapter,
		Members:     adapter,
		Messenger:   adapter,
		History:     adapter,
		Clock:       systemClock,
		Guilds:      adapter,
		Channels: discord.Channels{
			Drafts:      cfg.Channels.Drafts,
			Find:        cfg.Channels.Find,
			Stats:       cfg.Channels.Stats,
			HostSetup:   cfg.Channels.HostSetup,
			Leaderboard: cfg.Channels.Leaderboard,
			BotLogs:     cfg.Channels.BotLogs,
		},
		ManagementRoleID: cfg.Roles.Management,
		HostRoleID:       cfg.Roles.Host,
		AdminUserID:      cfg.Discord.AdminUserID,
		RequireWhitelist: cfg.Game.RequireWhitelist,
		MinPlayers:       cfg.Game.MinPlayers,
		Logger:           logger.With("component", "interactions"),
	})
	if err != nil {
		return fmt.Errorf("failed to create interaction handler: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Handler:       handler,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	errs := make(chan error, 1)
	if cfg.Observability.MetricsAddress != "" {
		server := httpapi.NewServer(cfg.Observability.MetricsAddress, httpapi.SetupRoutes(gameSvc, registry), logger)
		go func() {
			errs <- server.Run(ctx)
		}()
	}

	if err := bot.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	case err := <-errs:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Ops server stopped", "error", err)
		}
		<-ctx.Done()
	}

	logger.Info("Shutting down")
	if err := bot.Stop(); err != nil {
		logger.Warn("Error stopping bot", "error", err)
	}

	// games still registered keep their rooms until someone cleans them up
	games, err := gameSvc.ListGames(context.Background(), &game.ListGamesInput{})
	if err == nil && len(games.Games) > 0 {
		logger.Warn("Shutting down with active games", "count", len(games.Games))
	}

	logger.Info("Bot has been shut down")
	return nil
}

package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Intents the bot needs: interactions, voice states for drafting and
// member lists for role lookups
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates | discordgo.IntentsGuildMembers

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	handler    *Handler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *slog.Logger

	mu  sync.RWMutex
	ctx context.Context
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened discordgo session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Handler answers every interaction
	Handler *Handler

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.Handler == nil {
		return nil, errors.New("handler cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg.Session.Identify.Intents = Intents

	bot := &Bot{
		session:    cfg.Session,
		handler:    cfg.Handler,
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
		ctx:        context.Background(),
	}

	// Register the interaction and ready handlers
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleReady)

	return bot, nil
}

// Start opens the gateway connection and registers commands. ctx is handed
// to every interaction handled until Stop.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.handler.Commands() {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("Bot is now running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("Failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("Deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are guild
// scoped when a guild ID is configured, global otherwise.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("Registered command",
		"command", cmd.GetName(),
		"command_id", createdCmd.ID,
		"guild_id", b.config.GuildID)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

func (b *Bot) context() context.Context {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ctx
}

// handleReady puts the menus back in channels that lost them. Ready arrives
// again after every full reconnect.
func (b *Bot) handleReady(s *discordgo.Session, _ *discordgo.Ready) {
	posted, err := b.handler.PostStartupMenus(b.context(), s)
	if err != nil {
		b.logger.Error("Failed to post startup menus", "posted", posted, "error", err)
		return
	}
	if len(posted) > 0 {
		b.logger.Info("Posted startup menus", "menus", posted)
	}
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := b.context()

	if err := b.handler.Handle(ctx, s, i); err != nil {
		b.logger.Error("Error handling interaction",
			"type", i.Type.String(),
			"guild_id", i.GuildID,
			"error", err)
	}
}

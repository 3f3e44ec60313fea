package discord

import (
	"context"
	"fmt"
	"strings"

	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	"github.com/bwmarrin/discordgo"
)

// SquadCommand handles the /squad command
type SquadCommand struct {
	BaseCommand
	handler *Handler
}

// NewSquadCommand creates a new squad command handler
func NewSquadCommand(h *Handler) *SquadCommand {
	minResults := float64(1)

	return &SquadCommand{
		BaseCommand: BaseCommand{
			Name:        "squad",
			Description: "Team games, stats and matchmaking",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "menus",
					Description: "Replace the persistent menus in their channels",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "menu",
							Description: "Only refresh this menu",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Drafts", Value: MenuDrafts},
								{Name: "Find", Value: MenuFind},
								{Name: "Stats", Value: MenuStats},
								{Name: "Host setup", Value: MenuHostSetup},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show a player's wins and losses",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Player to look up, yourself if omitted",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the top players",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "games",
					Description: "Search the game log",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "query",
							Description: "Player name, game number, winner or 'all'",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "Number of results",
							MinValue:    &minResults,
							MaxValue:    gamelogRepo.MaxSearchLimit,
						},
					},
				},
			},
		},
		handler: h,
	}
}

// Handle processes a Discord interaction for the squad command
func (c *SquadCommand) Handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}

	switch sub.Name {
	case "menus":
		var names []string
		if opt, ok := options["menu"]; ok {
			names = append(names, opt.StringValue())
		}
		return c.handleMenus(ctx, r, i, names...)
	case "stats":
		return c.handleStats(ctx, r, i, options["user"])
	case "leaderboard":
		return c.handleLeaderboard(ctx, r, i)
	case "games":
		var query string
		if opt, ok := options["query"]; ok {
			query = opt.StringValue()
		}
		var limit int
		if opt, ok := options["limit"]; ok {
			limit = int(opt.IntValue())
		}
		return c.handleGames(ctx, r, i, query, limit)
	default:
		return fmt.Errorf("%w: subcommand %s", ErrUnknownInteraction, sub.Name)
	}
}

func (c *SquadCommand) handleMenus(ctx context.Context, r Responder, i *discordgo.InteractionCreate, names ...string) error {
	h := c.handler
	if !h.isManagement(i) {
		return RespondWithEphemeralMessage(r, i, msgManagementNeeded)
	}
	if len(h.selectMenus(names...)) == 0 {
		return RespondWithEphemeralMessage(r, i, "❌ No menu channels are configured")
	}

	// purging history can take longer than the interaction deadline
	if err := DeferEphemeral(r, i); err != nil {
		return err
	}

	posted, err := h.refreshMenus(ctx, r, names...)
	if err != nil {
		h.logger.Error("Failed to refresh menus", "posted", posted, "error", err)
		return EditResponse(r, i, "❌ Error posting menus", nil, nil)
	}

	h.logAction(ctx, i, "Refreshed menus", strings.Join(posted, ", "))
	return EditResponse(r, i, fmt.Sprintf("✅ Posted menus: %s", strings.Join(posted, ", ")), nil, nil)
}

func (c *SquadCommand) handleStats(ctx context.Context, r Responder, i *discordgo.InteractionCreate, user *discordgo.ApplicationCommandInteractionDataOption) error {
	h := c.handler
	if user == nil {
		return h.handleMyStats(ctx, r, i)
	}

	userID, _ := user.Value.(string)
	if userID == "" {
		return RespondWithEphemeralMessage(r, i, msgGenericError)
	}
	return h.respondWithStats(ctx, r, i, userID, h.displayName(ctx, i.GuildID, userID))
}

func (c *SquadCommand) handleLeaderboard(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	h := c.handler

	n, err := h.leaderboard(ctx, i.GuildID, h.caller(i).DisplayName)
	if err != nil {
		h.logger.Error("Failed to build leaderboard", "error", err)
		return RespondWithEphemeralMessage(r, i, msgLeaderboardFailed)
	}
	return RespondWithNotice(r, i, n, nil, false)
}

func (c *SquadCommand) handleGames(ctx context.Context, r Responder, i *discordgo.InteractionCreate, query string, limit int) error {
	h := c.handler
	if !h.isManagement(i) {
		return RespondWithEphemeralMessage(r, i, msgManagementNeeded)
	}
	return h.respondWithSearch(ctx, r, i, query, limit)
}

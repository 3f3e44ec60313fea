package discord

import (
	"context"

	"github.com/KirkDiggler/squadup/internal/models"
	discordplatform "github.com/KirkDiggler/squadup/internal/platform/discord"
	"github.com/bwmarrin/discordgo"
)

// Responder is the part of *discordgo.Session the handlers answer interactions with
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ Responder = (*discordgo.Session)(nil)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

func embeds(n *models.Notice) []*discordgo.MessageEmbed {
	if n == nil {
		return nil
	}
	return []*discordgo.MessageEmbed{discordplatform.Embed(n)}
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(r Responder, i *discordgo.InteractionCreate, message string) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithNotice sends an embed response, optionally only to the caller
func RespondWithNotice(r Responder, i *discordgo.InteractionCreate, n *models.Notice, components []discordgo.MessageComponent, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds:     embeds(n),
		Components: components,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// UpdateWithNotice replaces the message the clicked component belongs to
func UpdateWithNotice(r Responder, i *discordgo.InteractionCreate, n *models.Notice, components []discordgo.MessageComponent) error {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds(n),
			Components: components,
		},
	})
}

// DeferUpdate acknowledges a component click that will edit its message later
func DeferUpdate(r Responder, i *discordgo.InteractionCreate) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// DeferEphemeral acknowledges an interaction with a private "thinking" reply
func DeferEphemeral(r Responder, i *discordgo.InteractionCreate) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// EditResponse rewrites the original response of a deferred interaction
func EditResponse(r Responder, i *discordgo.InteractionCreate, content string, n *models.Notice, components []discordgo.MessageComponent) error {
	e := embeds(n)
	if e == nil {
		e = []*discordgo.MessageEmbed{}
	}
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	_, err := r.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &e,
		Components: &components,
	})
	return err
}

// FollowupEphemeral sends a private message after the interaction was acknowledged
func FollowupEphemeral(r Responder, i *discordgo.InteractionCreate, message string) error {
	_, err := r.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

// RespondWithModal opens a form with one short text input per field
func RespondWithModal(r Responder, i *discordgo.InteractionCreate, customID, title string, inputs ...discordgo.TextInput) error {
	rows := make([]discordgo.MessageComponent, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{in},
		})
	}

	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: rows,
		},
	})
}

// modalValues collects text input values by custom ID
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)

	var collect func(c discordgo.MessageComponent)
	collect = func(c discordgo.MessageComponent) {
		switch v := c.(type) {
		case *discordgo.ActionsRow:
			for _, child := range v.Components {
				collect(child)
			}
		case discordgo.ActionsRow:
			for _, child := range v.Components {
				collect(child)
			}
		case *discordgo.TextInput:
			values[v.CustomID] = v.Value
		case discordgo.TextInput:
			values[v.CustomID] = v.Value
		}
	}

	for _, c := range data.Components {
		collect(c)
	}
	return values
}

// interactionMember returns who triggered the interaction
func interactionMember(i *discordgo.InteractionCreate) *models.Member {
	if i.Member != nil && i.Member.User != nil {
		return discordplatform.Member(i.Member)
	}
	if i.User != nil {
		return discordplatform.Member(&discordgo.Member{User: i.User})
	}
	return nil
}

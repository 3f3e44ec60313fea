package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/squadup/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// translate maps discord REST failures onto the platform errors services react to
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Message != nil {
			switch restErr.Message.Code {
			case discordgo.ErrCodeCannotSendMessagesToThisUser:
				return fmt.Errorf("%s: %w: %w", op, platform.ErrMessagingDisabled, err)
			case discordgo.ErrCodeUnknownChannel,
				discordgo.ErrCodeUnknownMessage,
				discordgo.ErrCodeUnknownMember,
				discordgo.ErrCodeUnknownRole,
				discordgo.ErrCodeUnknownUser:
				return fmt.Errorf("%s: %w: %w", op, platform.ErrNotFound, err)
			}
		}
		if restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w: %w", op, platform.ErrNotFound, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

package matchmaking

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/squadup/internal/models"
)

// Place renders "Region" or "Region (Location)"
func Place(region Region, location *Location) string {
	if location == nil {
		return region.Label
	}
	return fmt.Sprintf("%s (%s)", region.Label, location.Label)
}

func lookingNotice(input *FindPlayersInput, region Region, location *Location, inGameName string, now time.Time) *models.Notice {
	emoji := region.Emoji
	if emoji == "" {
		emoji = FallbackEmoji
	}

	n := &models.Notice{
		Title: fmt.Sprintf("%s Player Looking for Game!", emoji),
		Description: fmt.Sprintf("**%s** (%s) is looking for players in the **%s** region!",
			input.Requester.DisplayName, inGameName, Place(region, location)),
		Color: models.ColorBlue,
	}

	n.AddField("📍 Server", input.GuildName, true).
		AddField("🕐 Time", fmt.Sprintf("<t:%d:R>", now.Unix()), true).
		AddField("💬 Join the Action", fmt.Sprintf("Head over to %s to join the game!", input.GuildName), false)

	return n
}

func summaryNotice(region Region, out *FindPlayersOutput) *models.Notice {
	n := &models.Notice{
		Title:       "📬 Notification Results",
		Description: fmt.Sprintf("Successfully notified **%d** players in the %s region!", out.Delivered, region.Label),
		Color:       models.ColorGreen,
	}

	if out.Failed > 0 {
		n.AddField("ℹ️ Note", fmt.Sprintf("%d players couldn't be reached (DMs disabled)", out.Failed), false)
	}

	return n
}

package matchmaking

import (
	"github.com/KirkDiggler/squadup/internal/models"
)

// FindPlayersInput contains parameters for a regional player search
type FindPlayersInput struct {
	GuildID   string
	GuildName string

	// Region is a region key such as "east"
	Region string

	// Location is an optional location key within the region
	Location string

	Requester *models.Member

	// OnTargeted is called once recipients are known and before any DM is sent
	OnTargeted func(targeted int)
}

// FindPlayersOutput reports how the notification round went
type FindPlayersOutput struct {
	Region   Region
	Location *Location

	Targeted  int
	Delivered int
	Failed    int
}

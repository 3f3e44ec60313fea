package stats

import (
	"errors"
	"fmt"
)

// DefaultLeaderboardLimit is used when no limit is given
const DefaultLeaderboardLimit = 10

// GetStatsInput contains parameters for reading a player's record
type GetStatsInput struct {
	UserID string
}

// RecordResultInput contains the two sides of a completed game
type RecordResultInput struct {
	Winners []string
	Losers  []string
}

// GetLeaderboardInput contains parameters for the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of entries, DefaultLeaderboardLimit when <= 0
	Limit int
}

// GetLeaderboardOutput contains the ranked records
type GetLeaderboardOutput struct {
	Entries []*PlayerRank
}

func validateResult(input *RecordResultInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if len(input.Winners) == 0 && len(input.Losers) == 0 {
		return errors.New("result must include at least one player")
	}

	seen := make(map[string]bool, len(input.Winners)+len(input.Losers))
	for _, id := range append(append([]string{}, input.Winners...), input.Losers...) {
		if id == "" {
			return errors.New("user ID cannot be empty")
		}
		if seen[id] {
			return fmt.Errorf("user %s appears more than once in the result", id)
		}
		seen[id] = true
	}

	return nil
}

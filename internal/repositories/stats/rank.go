package stats

import (
	"sort"

	"github.com/KirkDiggler/squadup/internal/models"
)

// PlayerRank is a leaderboard row
type PlayerRank struct {
	// Position is 1-based
	Position int

	Stats *models.PlayerStats
}

// Rank orders players by wins then win rate, both descending, with the
// user ID as the final tie-break. Players without games are left out.
func Rank(all []*models.PlayerStats, limit int) []*PlayerRank {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	played := make([]*models.PlayerStats, 0, len(all))
	for _, s := range all {
		if s != nil && s.GamesPlayed > 0 {
			played = append(played, s)
		}
	}

	sort.SliceStable(played, func(i, j int) bool {
		a, b := played[i], played[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if ra, rb := a.WinRate(), b.WinRate(); ra != rb {
			return ra > rb
		}
		return a.UserID < b.UserID
	})

	if len(played) > limit {
		played = played[:limit]
	}

	ranks := make([]*PlayerRank, len(played))
	for i, s := range played {
		ranks[i] = &PlayerRank{Position: i + 1, Stats: s}
	}
	return ranks
}

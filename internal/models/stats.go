package models

// PlayerStats is a player's win/loss record
type PlayerStats struct {
	// UserID is the Discord user ID of the player
	UserID string `json:"-"`

	// GamesPlayed always equals Wins + Losses
	GamesPlayed uint `json:"games_played"`

	// Wins is the number of completed games the player's team won
	Wins uint `json:"wins"`

	// Losses is the number of completed games the player's team lost
	Losses uint `json:"losses"`
}

// WinRate returns wins over games played, or 0 for a player with no games
func (s *PlayerStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed)
}

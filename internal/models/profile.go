package models

// Profile is what the bot knows about an onboarded user
type Profile struct {
	// UserID is the Discord user ID
	UserID string `json:"-"`

	// InGameName is the name the player uses in the game itself
	InGameName string `json:"in_game_name"`

	// IsHost marks users allowed to run games
	IsHost bool `json:"is_host"`
}

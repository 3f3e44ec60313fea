package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "game not found"
	ErrGameAlreadyExists GameError = "game already exists"
	ErrInvalidOutcome    GameError = "invalid game outcome"
	ErrEmptyTeam         GameError = "both teams need at least one player"
	ErrTeamsOverlap      GameError = "a player cannot be on both teams"
	ErrEmptyMemberID     GameError = "team member ID cannot be empty"
	ErrInvalidGuild      GameError = "guild ID cannot be empty"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilGameLogRepo    GameError = "game log repository cannot be nil"
	ErrNilStatsRepo      GameError = "stats repository cannot be nil"
	ErrNilVoiceService   GameError = "voice service cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
)

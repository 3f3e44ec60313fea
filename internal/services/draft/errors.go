package draft

// DraftError is a custom error type for team assembly errors
type DraftError string

// Error implements the error interface
func (e DraftError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrOddParticipants      DraftError = "an even number of players is needed for balanced teams"
	ErrNotEnoughPlayers     DraftError = "not enough players for a game"
	ErrTooManyPlayers       DraftError = "too many players for a game"
	ErrDuplicateParticipant DraftError = "a player was listed more than once"
	ErrDraftNotFound        DraftError = "draft not found"
	ErrDraftExpired         DraftError = "draft has expired"
	ErrNilConfig            DraftError = "config cannot be nil"
	ErrNilShuffler          DraftError = "shuffler cannot be nil"
	ErrNilClock             DraftError = "clock cannot be nil"
	ErrNilUUIDGenerator     DraftError = "UUID generator cannot be nil"
	ErrInvalidPlayerLimits  DraftError = "player limits are invalid"
)

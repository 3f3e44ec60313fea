package matchmaking

// MatchmakingError is a custom error type for matchmaking errors
type MatchmakingError string

// Error implements the error interface
func (e MatchmakingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownRegion     MatchmakingError = "unknown region"
	ErrUnknownLocation   MatchmakingError = "unknown location for region"
	ErrRoleNotFound      MatchmakingError = "regional role not found"
	ErrNoPlayersInRegion MatchmakingError = "no players found in region"
	ErrInvalidRequester  MatchmakingError = "requester is required"
	ErrNilConfig         MatchmakingError = "config cannot be nil"
	ErrNilRoleDirectory  MatchmakingError = "role directory cannot be nil"
	ErrNilMessenger      MatchmakingError = "messenger cannot be nil"
	ErrNilPacer          MatchmakingError = "pacer cannot be nil"
	ErrNilProfileService MatchmakingError = "profile service cannot be nil"
	ErrNilClock          MatchmakingError = "clock cannot be nil"
)

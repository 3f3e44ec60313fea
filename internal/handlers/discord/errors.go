package discord

// HandlerError is a custom error type for interaction handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig             HandlerError = "config cannot be nil"
	ErrNilDraftService       HandlerError = "draft service cannot be nil"
	ErrNilGameService        HandlerError = "game service cannot be nil"
	ErrNilProfileService     HandlerError = "profile service cannot be nil"
	ErrNilMatchmakingService HandlerError = "matchmaking service cannot be nil"
	ErrNilStatsRepo          HandlerError = "stats repository cannot be nil"
	ErrNilGameLogRepo        HandlerError = "game log repository cannot be nil"
	ErrNilVoiceRooms         HandlerError = "voice rooms cannot be nil"
	ErrNilMemberDirectory    HandlerError = "member directory cannot be nil"
	ErrNilMessenger          HandlerError = "messenger cannot be nil"
	ErrNilChannelHistory     HandlerError = "channel history cannot be nil"
	ErrNilClock              HandlerError = "clock cannot be nil"
	ErrUnknownInteraction    HandlerError = "unknown interaction"
	ErrMalformedCustomID     HandlerError = "malformed component ID"
)

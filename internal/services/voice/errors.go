package voice

// VoiceError is a custom error type for voice provisioning errors
type VoiceError string

// Error implements the error interface
func (e VoiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrProvisionFailed VoiceError = "failed to create game rooms"
	ErrInvalidInput    VoiceError = "guild ID cannot be empty"
	ErrNilConfig       VoiceError = "config cannot be nil"
	ErrNilRooms        VoiceError = "voice rooms cannot be nil"
	ErrNilPacer        VoiceError = "pacer cannot be nil"
)

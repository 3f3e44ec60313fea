package profile

// ProfileError is a custom error type for profile errors
type ProfileError string

// Error implements the error interface
func (e ProfileError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidUserID     ProfileError = "user ID must be a Discord snowflake"
	ErrInvalidInGameName ProfileError = "in-game name must be between 1 and 50 characters"
	ErrNilConfig         ProfileError = "config cannot be nil"
	ErrNilProfileRepo    ProfileError = "profile repository cannot be nil"
)

package platform

// Error is a platform failure the services know how to react to
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound is returned when a channel, role or member no longer exists
	ErrNotFound Error = "platform resource not found"

	// ErrMessagingDisabled is returned when a user does not accept direct messages
	ErrMessagingDisabled Error = "user does not accept direct messages"
)

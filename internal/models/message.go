package models

// Message is a message found in a channel's history
type Message struct {
	ID        string
	ChannelID string

	// HasEmbeds is true for rich messages such as menus
	HasEmbeds bool
}

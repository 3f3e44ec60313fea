package models

// Member is a guild member as seen by the bot
type Member struct {
	// ID is the Discord user ID
	ID string

	// DisplayName is the nickname, global name or username, in that order
	DisplayName string

	// Username is the account's unique handle
	Username string

	// Bot is true for bot accounts, which never take part in games
	Bot bool
}

// Channel is a guild channel handle
type Channel struct {
	ID       string
	GuildID  string
	ParentID string
	Name     string
}

package discord

import (
	"strings"
)

// Static component IDs. They stay stable across restarts so menus posted
// earlier keep working.
const (
	ButtonCreateGame   = "drafts_create_game"
	ButtonViewGames    = "drafts_view_games"
	ButtonMyStats      = "stats_my_stats"
	ButtonLeaderboard  = "stats_leaderboard"
	ButtonPlayerLookup = "stats_player_lookup"
	ButtonHostSetup    = "host_setup"
	ButtonGameSearch   = "admin_game_search"

	ButtonRefreshLeaderboard = "admin_refresh_leaderboard"

	ModalPlayerLookup = "modal_player_lookup"
	ModalHostSetup    = "modal_host_setup"
	ModalGameSearch   = "modal_game_search"
)

// Actions for IDs that carry arguments
const (
	ActionDraftCancel  = "draft_cancel"
	ActionDraftReroll  = "draft_reroll"
	ActionDraftStart   = "draft_start"
	ActionGameEnd      = "game_end"
	ActionFindRegion   = "find_region"
	ActionFindLocation = "find_location"
	ActionRefreshMenu  = "admin_refresh"
)

// Modal input IDs
const (
	InputPlayerName = "player_name"
	InputHostID     = "host_id"
	InputInGameName = "in_game_name"
	InputSearchTerm = "search_term"
	InputLimit      = "limit"
)

const idSeparator = ":"

// EncodeID joins an action and its arguments into a component custom ID
func EncodeID(action string, args ...string) string {
	return strings.Join(append([]string{action}, args...), idSeparator)
}

// DecodeID splits a custom ID back into its action and arguments
func DecodeID(customID string) (string, []string) {
	parts := strings.Split(customID, idSeparator)
	return parts[0], parts[1:]
}

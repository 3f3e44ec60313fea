package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/repositories/stats"
	"github.com/KirkDiggler/squadup/internal/services/game"
	"github.com/KirkDiggler/squadup/internal/services/matchmaking"
	"github.com/bwmarrin/discordgo"
)

// maxSearchFields keeps search results inside the embed field limit
const maxSearchFields = 10

func button(label, emoji, customID string, style discordgo.ButtonStyle) discordgo.Button {
	return discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji,
		},
	}
}

func row(buttons ...discordgo.MessageComponent) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func memberNames(members []*models.Member) string {
	if len(members) == 0 {
		return "None"
	}
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.DisplayName
	}
	return strings.Join(names, "\n")
}

// Menus

func renderDraftsMenu() (*models.Notice, []discordgo.MessageComponent) {
	n := &models.Notice{
		Title:       "🎮 Game Drafts",
		Description: "Welcome to the game drafts system! Create or view active games.",
		Color:       models.ColorGreen,
	}
	n.AddField("📝 Create Game", "Start a new game draft from your voice channel", false).
		AddField("👁️ View Games", "See all currently active games", false)

	return n, row(
		button("Create Game", "📝", ButtonCreateGame, discordgo.SuccessButton),
		button("View Games", "👁️", ButtonViewGames, discordgo.SecondaryButton),
	)
}

func renderFindMenu() (*models.Notice, []discordgo.MessageComponent) {
	n := &models.Notice{
		Title:       "🔍 Find Players",
		Description: "Looking for players? Select your region to notify others!",
		Color:       models.ColorBlue,
	}

	var buttons []discordgo.MessageComponent
	for _, r := range matchmaking.Regions() {
		n.AddField(fmt.Sprintf("%s %s", r.Emoji, r.Label), fmt.Sprintf("%s time zone players", r.Label), true)
		buttons = append(buttons, button(r.Label, r.Emoji, EncodeID(ActionFindRegion, r.Key), discordgo.PrimaryButton))
	}

	return n, row(buttons...)
}

func renderLocationMenu(r matchmaking.Region) (*models.Notice, []discordgo.MessageComponent) {
	n := &models.Notice{
		Title:       fmt.Sprintf("%s %s Region Locations", r.Emoji, r.Label),
		Description: fmt.Sprintf("Select a specific location in the %s region:", r.Label),
		Color:       models.ColorBlue,
	}

	var buttons []discordgo.MessageComponent
	for _, l := range r.Locations {
		buttons = append(buttons, button(l.Label, l.Emoji, EncodeID(ActionFindLocation, l.Key), discordgo.SecondaryButton))
	}

	return n, row(buttons...)
}

func renderStatsMenu() (*models.Notice, []discordgo.MessageComponent) {
	n := &models.Notice{
		Title:       "📊 Player Statistics",
		Description: "View your stats or check the leaderboard!",
		Color:       models.ColorPurple,
	}
	n.AddField("👤 My Stats", "View your personal statistics", true).
		AddField("🏆 Leaderboard", "See the top players", true).
		AddField("🔍 Player Stats", "Check another player's stats", true)

	return n, row(
		button("My Stats", "👤", ButtonMyStats, discordgo.PrimaryButton),
		button("Leaderboard", "🏆", ButtonLeaderboard, discordgo.SuccessButton),
		button("Player Stats", "🔍", ButtonPlayerLookup, discordgo.SecondaryButton),
	)
}

func renderHostSetupMenu() (*models.Notice, []discordgo.MessageComponent) {
	n := &models.Notice{
		Title:       "🛠️ Host Setup",
		Description: "Setup new hosts and user profiles for the bot",
		Color:       models.ColorOrange,
		Footer:      "Admin only - Setup new hosts to use the bot",
	}
	n.AddField("⚙️ Setup", "Add a new host and their profile", false).
		AddField("🔍 Game Search", "Search through game logs and statistics", false)

	return n, row(
		button("Setup", "⚙️", ButtonHostSetup, discordgo.PrimaryButton),
		button("Game Search", "🔍", ButtonGameSearch, discordgo.SecondaryButton),
	)
}

func renderAdminPanel() (*models.Notice, []discordgo.MessageComponent) {
	n := &models.Notice{
		Title:       "🛠️ Admin Panel",
		Description: "Management tools for bot administration",
		Color:       models.ColorRed,
		Footer:      "Management role required",
	}
	n.AddField("🔄 Refresh Menus", "Refresh all bot menus in their channels", false).
		AddField("🔍 Game Search", "Search through game logs and statistics", false)

	refresh := row(
		button("Refresh Drafts", "🎮", EncodeID(ActionRefreshMenu, MenuDrafts), discordgo.SecondaryButton),
		button("Refresh Find", "🌍", EncodeID(ActionRefreshMenu, MenuFind), discordgo.SecondaryButton),
		button("Refresh Stats", "📊", EncodeID(ActionRefreshMenu, MenuStats), discordgo.SecondaryButton),
		button("Refresh Leaderboard", "🏆", ButtonRefreshLeaderboard, discordgo.SecondaryButton),
		button("Refresh Setup", "⚙️", EncodeID(ActionRefreshMenu, MenuHostSetup), discordgo.SecondaryButton),
	)
	search := row(
		button("Game Search", "🔍", ButtonGameSearch, discordgo.PrimaryButton),
	)

	return n, append(refresh, search...)
}

// Drafts and games

func renderDraft(d *models.Draft, rerolled bool) (*models.Notice, []discordgo.MessageComponent) {
	n := &models.Notice{
		Title:       "🎮 Game Draft Created",
		Description: "Teams have been randomly generated!",
		Color:       models.ColorGreen,
	}
	if rerolled {
		n.Title = "🎮 Teams Rerolled!"
		n.Description = "New random teams have been generated!"
		n.Color = models.ColorOrange
	}

	n.AddField("🔴 Team 1", memberNames(d.Team1), true).
		AddField("🔵 Team 2", memberNames(d.Team2), true)
	n.Footer = fmt.Sprintf("Draft from %s", d.VoiceChannelName)
	n.Timestamp = d.ExpiresAt

	return n, row(
		button("Cancel", "❌", EncodeID(ActionDraftCancel, d.ID), discordgo.DangerButton),
		button("Reroll Teams", "🎲", EncodeID(ActionDraftReroll, d.ID), discordgo.SecondaryButton),
		button("Start Game", "🚀", EncodeID(ActionDraftStart, d.ID), discordgo.SuccessButton),
	)
}

func renderDraftCancelled() *models.Notice {
	return &models.Notice{
		Title:       "❌ Draft Cancelled",
		Description: "The game draft has been cancelled.",
		Color:       models.ColorRed,
	}
}

func renderGameStarted(out *game.StartGameOutput) (*models.Notice, []discordgo.MessageComponent) {
	g := out.Game
	n := &models.Notice{
		Title:       fmt.Sprintf("🎮 Game #%d Started!", g.GameNumber),
		Description: "Players have been moved to their team channels.",
		Color:       models.ColorGreen,
		Timestamp:   g.StartedAt,
	}

	n.AddField("🔴 Team 1", teamField(g.Rooms.Team1ChannelID, g.Team1), true).
		AddField("🔵 Team 2", teamField(g.Rooms.Team2ChannelID, g.Team2), true)

	if out.Skipped > 0 || out.MoveFailures > 0 {
		n.AddField("⚠️ Moves", fmt.Sprintf("Moved %d, skipped %d not in voice, %d failed",
			out.Moved, out.Skipped, out.MoveFailures), false)
	}

	return n, row(
		button("Team 1 Wins", "🔴", EncodeID(ActionGameEnd, g.ID, strconv.Itoa(int(models.OutcomeTeam1Wins))), discordgo.SuccessButton),
		button("Team 2 Wins", "🔵", EncodeID(ActionGameEnd, g.ID, strconv.Itoa(int(models.OutcomeTeam2Wins))), discordgo.SuccessButton),
		button("Cancel Game", "❌", EncodeID(ActionGameEnd, g.ID, strconv.Itoa(int(models.OutcomeCancelled))), discordgo.DangerButton),
	)
}

func teamField(channelID string, userIDs []string) string {
	lines := make([]string, 0, len(userIDs)+1)
	if channelID != "" {
		lines = append(lines, "<#"+channelID+">")
	}
	for _, id := range userIDs {
		lines = append(lines, mention(id))
	}
	return strings.Join(lines, "\n")
}

func renderGameEnded(g *models.ActiveGame, outcome models.Outcome) *models.Notice {
	if outcome == models.OutcomeCancelled {
		return &models.Notice{
			Title:       "❌ Game Cancelled",
			Description: fmt.Sprintf("Game #%d has been cancelled.", g.GameNumber),
			Color:       models.ColorRed,
		}
	}
	return &models.Notice{
		Title:       fmt.Sprintf("🎉 %s Wins!", outcome),
		Description: fmt.Sprintf("Game #%d has ended.", g.GameNumber),
		Color:       models.ColorGold,
	}
}

func renderActiveGames(games []*models.ActiveGame) *models.Notice {
	if len(games) == 0 {
		return &models.Notice{
			Title:       "🎮 Active Games",
			Description: "No active games currently running.",
			Color:       models.ColorOrange,
		}
	}

	n := &models.Notice{
		Title: "🎮 Active Games",
		Color: models.ColorBlue,
	}
	for _, g := range games {
		n.AddField(fmt.Sprintf("Game #%d", g.GameNumber),
			fmt.Sprintf("**Team 1:** %s\n**Team 2:** %s", mentions(g.Team1), mentions(g.Team2)), false)
	}
	return n
}

func mentions(ids []string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = mention(id)
	}
	return strings.Join(out, ", ")
}

// Stats

func renderStats(name string, st *models.PlayerStats) *models.Notice {
	n := &models.Notice{
		Title: fmt.Sprintf("📊 Stats for %s", name),
		Color: models.ColorBlue,
	}
	n.AddField("Games Played", strconv.FormatUint(uint64(st.GamesPlayed), 10), true).
		AddField("Wins", strconv.FormatUint(uint64(st.Wins), 10), true).
		AddField("Losses", strconv.FormatUint(uint64(st.Losses), 10), true)

	if st.GamesPlayed > 0 {
		n.AddField("Win Rate", fmt.Sprintf("%.1f%%", st.WinRate()*100), true)
	}
	return n
}

func renderLeaderboard(entries []*stats.PlayerRank, names map[string]string, requestedBy string, now time.Time) *models.Notice {
	n := &models.Notice{
		Title:     "🏆 Current Leaderboard",
		Color:     models.ColorGold,
		Timestamp: now,
	}
	if requestedBy != "" {
		n.Footer = "Requested by " + requestedBy
	}

	if len(entries) == 0 {
		n.Description = "No games played yet!"
		return n
	}

	var b strings.Builder
	for _, e := range entries {
		name := names[e.Stats.UserID]
		if name == "" {
			name = "User " + e.Stats.UserID
		}
		fmt.Fprintf(&b, "%d. **%s** - %dW/%dL (%.1f%%)\n",
			e.Position, name, e.Stats.Wins, e.Stats.Losses, e.Stats.WinRate()*100)
	}
	n.Description = strings.TrimSuffix(b.String(), "\n")
	return n
}

// Admin

func renderHostAdded(p *models.Profile) *models.Notice {
	n := &models.Notice{
		Title: "✅ Host Added Successfully",
		Color: models.ColorGreen,
	}
	n.AddField("Host ID", p.UserID, true).
		AddField("In-Game Name", p.InGameName, true)
	return n
}

func renderSearchResults(query string, entries []*models.GameLogEntry) *models.Notice {
	n := &models.Notice{
		Title:       "🔍 Game Search Results",
		Description: fmt.Sprintf("Found %d games matching '%s'", len(entries), query),
		Color:       models.ColorGold,
	}

	for i, e := range entries {
		if i == maxSearchFields {
			n.Footer = fmt.Sprintf("Showing first %d of %d results", maxSearchFields, len(entries))
			break
		}
		n.AddField(fmt.Sprintf("Game #%d", e.GameNumber), fmt.Sprintf("**Teams:** %s vs %s\n**Winner:** %s\n**Time:** <t:%d:f>",
			logNames(e.Team1), logNames(e.Team2), winnerText(e), e.Timestamp.Unix()), false)
	}
	return n
}

func logNames(players []models.LogPlayer) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func winnerText(e *models.GameLogEntry) string {
	switch {
	case e.Status == models.GameStatusCancelled:
		return "Cancelled"
	case e.Winner != nil:
		return models.Outcome(*e.Winner).String()
	default:
		return "In progress"
	}
}

func lookingMessage(r matchmaking.Region, l *matchmaking.Location, targeted int) string {
	return fmt.Sprintf("%s Looking for players in the **%s** region...\nSending DMs to %d players!",
		r.Emoji, matchmaking.Place(r, l), targeted)
}

// Usage log

func renderUsageLog(user *models.Member, isHost bool, channelID, action, details string, now time.Time) *models.Notice {
	n := &models.Notice{
		Title:     "📊 Bot Usage Log",
		Color:     models.ColorBlue,
		Timestamp: now,
	}

	channel := "Unknown"
	if channelID != "" {
		channel = "<#" + channelID + ">"
	}
	userType := "Member"
	if isHost {
		userType = "Host"
	}

	n.AddField("User", fmt.Sprintf("%s (%s)", user.DisplayName, user.ID), true).
		AddField("Action", action, true).
		AddField("Channel", channel, true)
	if details != "" {
		n.AddField("Details", details, false)
	}
	n.AddField("User Type", userType, true)

	return n
}

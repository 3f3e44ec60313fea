package game

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/squadup/internal/models"
)

func startedNotice(e *models.GameLogEntry) *models.Notice {
	n := &models.Notice{
		Title:     fmt.Sprintf("🎮 Game #%d Started", e.GameNumber),
		Color:     models.ColorBlue,
		Timestamp: e.Timestamp,
	}
	return addTeams(n, e)
}

func endedNotice(e *models.GameLogEntry) *models.Notice {
	n := &models.Notice{
		Color:     models.ColorBlue,
		Timestamp: e.Timestamp,
	}

	if e.Status == models.GameStatusCancelled || e.Winner == nil {
		n.Title = fmt.Sprintf("❌ Game #%d Cancelled", e.GameNumber)
		return addTeams(n, e)
	}

	winner := models.Outcome(*e.Winner).String()
	n.Title = fmt.Sprintf("🎉 Game #%d Completed - %s Wins!", e.GameNumber, winner)
	addTeams(n, e)
	n.AddField("🏆 Winner", winner, false)
	return n
}

func addTeams(n *models.Notice, e *models.GameLogEntry) *models.Notice {
	n.AddField("🔴 Team 1", playerNames(e.Team1), true)
	n.AddField("🔵 Team 2", playerNames(e.Team2), true)
	return n
}

func playerNames(players []models.LogPlayer) string {
	if len(players) == 0 {
		return "None"
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return strings.Join(names, "\n")
}

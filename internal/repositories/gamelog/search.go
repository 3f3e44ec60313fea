package gamelog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/squadup/internal/models"
)

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}

// winnerLabel is what a winner query is matched against
func winnerLabel(e *models.GameLogEntry) string {
	switch {
	case e.Status == models.GameStatusCancelled:
		return "cancelled"
	case e.Winner != nil:
		return "team " + strconv.Itoa(*e.Winner)
	default:
		return ""
	}
}

func matches(e *models.GameLogEntry, query string) bool {
	if strings.Contains(strconv.FormatUint(e.GameNumber, 10), query) {
		return true
	}
	for _, p := range e.Players() {
		if strings.Contains(strings.ToLower(p.Name), query) {
			return true
		}
	}
	label := winnerLabel(e)
	return label != "" && strings.Contains(label, query)
}

// filter returns the newest matching entries. entries may be in any order.
func filter(entries []*models.GameLogEntry, query string, limit int) []*models.GameLogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	limit = clampLimit(limit)

	found := make([]*models.GameLogEntry, 0, limit)
	for _, e := range entries {
		if query == "" || query == SearchAll || matches(e, query) {
			found = append(found, e)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].GameNumber > found[j].GameNumber
	})

	if len(found) > limit {
		found = found[:limit]
	}
	return found
}

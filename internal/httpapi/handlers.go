// Package httpapi serves health, metrics and a read-only view of active games.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/KirkDiggler/squadup/internal/services/game"
	"github.com/go-chi/chi/v5"
)

type gamesResponse struct {
	Count int                  `json:"count"`
	Games []*models.ActiveGame `json:"games"`
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ListGames returns every active game, optionally filtered by ?guild_id=
func ListGames(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := games.ListGames(r.Context(), &game.ListGamesInput{
			GuildID: r.URL.Query().Get("guild_id"),
		})
		if err != nil {
			slog.Error("Failed to list games", "error", err)
			http.Error(w, "failed to list games", http.StatusInternalServerError)
			return
		}

		list := out.Games
		if list == nil {
			list = []*models.ActiveGame{}
		}
		writeJSON(w, http.StatusOK, gamesResponse{Count: len(list), Games: list})
	}
}

// GetGame returns one active game by ID
func GetGame(games game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := games.GetGame(r.Context(), &game.GetGameInput{
			GameID: chi.URLParam(r, "gameID"),
		})
		if errors.Is(err, game.ErrGameNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("Failed to get game", "error", err)
			http.Error(w, "failed to get game", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, out.Game)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/squadup/internal/models"
	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	statsRepo "github.com/KirkDiggler/squadup/internal/repositories/stats"
	"github.com/urfave/cli/v2"
)

func leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "print the leaderboard from the configured store",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: statsRepo.DefaultLeaderboardLimit,
				Usage: "number of players to show",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			st, err := openStores(c.Context, cfg.Storage)
			if err != nil {
				return err
			}
			defer st.close()

			out, err := st.stats.GetLeaderboard(c.Context, &statsRepo.GetLeaderboardInput{Limit: c.Int("limit")})
			if err != nil {
				return fmt.Errorf("failed to read leaderboard: %w", err)
			}

			if len(out.Entries) == 0 {
				fmt.Fprintln(c.App.Writer, "No games played yet!")
				return nil
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tUSER\tWINS\tLOSSES\tWIN RATE")
			for _, e := range out.Entries {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.1f%%\n",
					e.Position, e.Stats.UserID, e.Stats.Wins, e.Stats.Losses, e.Stats.WinRate()*100)
			}
			return w.Flush()
		},
	}
}

func gamesCommand() *cli.Command {
	return &cli.Command{
		Name:      "games",
		Usage:     "search the game log",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: gamelogRepo.DefaultSearchLimit,
				Usage: "maximum number of games to show",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			st, err := openStores(c.Context, cfg.Storage)
			if err != nil {
				return err
			}
			defer st.close()

			query := c.Args().First()
			if query == "" {
				query = gamelogRepo.SearchAll
			}

			out, err := st.gameLog.Search(c.Context, &gamelogRepo.SearchInput{Query: query, Limit: c.Int("limit")})
			if err != nil {
				return fmt.Errorf("failed to search game log: %w", err)
			}

			if len(out.Entries) == 0 {
				fmt.Fprintf(c.App.Writer, "No games found matching '%s'\n", query)
				return nil
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GAME\tSTARTED\tSTATUS\tTEAM 1\tTEAM 2\tWINNER")
			for _, e := range out.Entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					e.GameNumber,
					e.Timestamp.Format("2006-01-02 15:04"),
					e.Status,
					names(e.Team1),
					names(e.Team2),
					winner(e))
			}
			return w.Flush()
		},
	}
}

func names(players []models.LogPlayer) string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return strings.Join(out, ", ")
}

func winner(e *models.GameLogEntry) string {
	if e.Winner == nil {
		return "-"
	}
	return models.Outcome(*e.Winner).String()
}

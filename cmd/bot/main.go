package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/squadup/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "squadup",
		Usage: "Discord bot for drafting teams, tracking results and finding players",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"SQUADUP_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "path to a dotenv file loaded before the environment is read",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			leaderboardCommand(),
			gamesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		File:    c.String("config"),
		EnvFile: c.String("env-file"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

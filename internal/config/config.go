// Package config loads bot settings from an optional .env file, an optional
// YAML file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendJSON  = "json"
	BackendRedis = "redis"
)

// Config struct to hold the configuration settings
type Config struct {
	Discord       DiscordConfig       `yaml:"discord"`
	Channels      ChannelsConfig      `yaml:"channels"`
	Roles         RolesConfig         `yaml:"roles"`
	Game          GameConfig          `yaml:"game"`
	Pacing        PacingConfig        `yaml:"pacing"`
	Storage       StorageConfig       `yaml:"storage"`
	Observability ObservabilityConfig `yaml:"observability"`
	Log           LogConfig           `yaml:"log"`
}

// DiscordConfig holds the bot credentials and the guild it serves
type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`
	GuildID       string `yaml:"guild_id"`

	// AdminUserID may run host setup
	AdminUserID string `yaml:"admin_user_id"`
}

// ChannelsConfig holds the text channels menus and announcements go to
type ChannelsConfig struct {
	Drafts      string `yaml:"drafts"`
	Find        string `yaml:"find"`
	Stats       string `yaml:"stats"`
	Log         string `yaml:"log"`
	Leaderboard string `yaml:"leaderboard"`
	HostSetup   string `yaml:"host_setup"`
	BotLogs     string `yaml:"bot_logs"`
}

// RolesConfig holds regional and permission role IDs
type RolesConfig struct {
	East       string `yaml:"east"`
	Central    string `yaml:"central"`
	West       string `yaml:"west"`
	Host       string `yaml:"host"`
	Management string `yaml:"management"`
}

// GameConfig holds draft rules
type GameConfig struct {
	MinPlayers       int           `yaml:"min_players"`
	MaxPlayers       int           `yaml:"max_players"`
	DraftTTL         time.Duration `yaml:"draft_ttl"`
	RequireWhitelist bool          `yaml:"require_whitelist"`
}

// PacingConfig holds the spacing of rate limited platform calls
type PacingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	DMInterval   time.Duration `yaml:"dm_interval"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	DataDir       string `yaml:"data_dir"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
}

// ObservabilityConfig holds the ops HTTP settings
type ObservabilityConfig struct {
	// MetricsAddress is where /healthz, /metrics and /games are served. Empty disables it.
	MetricsAddress string `yaml:"metrics_address"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadOptions points at the optional files
type LoadOptions struct {
	// File is a YAML config file. A missing file is not an error.
	File string

	// EnvFile is a dotenv file. A missing file is not an error.
	EnvFile string
}

// Load reads the configuration, applies defaults and validates it
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	var cfg Config
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"DISCORD_TOKEN":          &c.Discord.Token,
		"APPLICATION_ID":         &c.Discord.ApplicationID,
		"GUILD_ID":               &c.Discord.GuildID,
		"ADMIN_USER_ID":          &c.Discord.AdminUserID,
		"DRAFTS_CHANNEL_ID":      &c.Channels.Drafts,
		"FIND_CHANNEL_ID":        &c.Channels.Find,
		"STATS_CHANNEL_ID":       &c.Channels.Stats,
		"LOG_CHANNEL_ID":         &c.Channels.Log,
		"LEADERBOARD_CHANNEL_ID": &c.Channels.Leaderboard,
		"HOST_SETUP_CHANNEL_ID":  &c.Channels.HostSetup,
		"BOT_LOGS_CHANNEL_ID":    &c.Channels.BotLogs,
		"EAST_ROLE_ID":           &c.Roles.East,
		"CENTRAL_ROLE_ID":        &c.Roles.Central,
		"WEST_ROLE_ID":           &c.Roles.West,
		"HOST_ROLE_ID":           &c.Roles.Host,
		"MANAGEMENT_ROLE_ID":     &c.Roles.Management,
		"STORAGE_BACKEND":        &c.Storage.Backend,
		"DATA_DIR":               &c.Storage.DataDir,
		"REDIS_ADDR":             &c.Storage.RedisAddr,
		"REDIS_PASSWORD":         &c.Storage.RedisPassword,
		"METRICS_ADDRESS":        &c.Observability.MetricsAddress,
		"LOG_LEVEL":              &c.Log.Level,
		"LOG_FORMAT":             &c.Log.Format,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"MIN_PLAYERS": &c.Game.MinPlayers,
		"MAX_PLAYERS": &c.Game.MaxPlayers,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s value: %w", key, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"DRAFT_TTL":     &c.Game.DraftTTL,
		"MOVE_INTERVAL": &c.Pacing.MoveInterval,
		"DM_INTERVAL":   &c.Pacing.DMInterval,
	}
	for key, dst := range durations {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s value: %w", key, err)
			}
			*dst = d
		}
	}

	if v := os.Getenv("REQUIRE_WHITELIST"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid REQUIRE_WHITELIST value: %w", err)
		}
		c.Game.RequireWhitelist = b
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Game.MinPlayers == 0 {
		c.Game.MinPlayers = 2
	}
	if c.Game.MaxPlayers == 0 {
		c.Game.MaxPlayers = 10
	}
	if c.Game.DraftTTL == 0 {
		c.Game.DraftTTL = 5 * time.Minute
	}
	if c.Pacing.MoveInterval == 0 {
		c.Pacing.MoveInterval = 500 * time.Millisecond
	}
	if c.Pacing.DMInterval == 0 {
		c.Pacing.DMInterval = time.Second
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendJSON
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Storage.RedisAddr == "" {
		c.Storage.RedisAddr = "localhost:6379"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
}

// Validate checks settings every command relies on
func (c *Config) Validate() error {
	if c.Game.MinPlayers < 2 {
		return fmt.Errorf("min_players must be at least 2, got %d", c.Game.MinPlayers)
	}
	if c.Game.MaxPlayers < c.Game.MinPlayers {
		return fmt.Errorf("max_players (%d) must not be below min_players (%d)", c.Game.MaxPlayers, c.Game.MinPlayers)
	}
	if c.Game.DraftTTL < 0 || c.Pacing.MoveInterval < 0 || c.Pacing.DMInterval < 0 {
		return errors.New("durations must not be negative")
	}

	switch c.Storage.Backend {
	case BackendJSON, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}

// ValidateForRun adds the checks only the bot itself needs
func (c *Config) ValidateForRun() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN is required")
	}
	return nil
}

// RegionRoles maps region keys to their role IDs, skipping unset ones
func (c *Config) RegionRoles() map[string]string {
	roles := make(map[string]string, 3)
	for key, id := range map[string]string{
		"east":    c.Roles.East,
		"central": c.Roles.Central,
		"west":    c.Roles.West,
	} {
		if id != "" {
			roles[key] = id
		}
	}
	return roles
}

package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	statsKeyPrefix = "stats:"
	playersKey     = "stats:players"

	fieldGamesPlayed = "games_played"
	fieldWins        = "wins"
	fieldLosses      = "losses"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using one hash per player
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetStats reads the player's hash
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, statsKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return parseStats(input.UserID, fields)
}

// RecordResult increments every participant's counters in a single transaction
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range input.Winners {
			key := statsKeyPrefix + id
			pipe.HIncrBy(ctx, key, fieldGamesPlayed, 1)
			pipe.HIncrBy(ctx, key, fieldWins, 1)
			pipe.HIncrBy(ctx, key, fieldLosses, 0)
			pipe.SAdd(ctx, playersKey, id)
		}
		for _, id := range input.Losers {
			key := statsKeyPrefix + id
			pipe.HIncrBy(ctx, key, fieldGamesPlayed, 1)
			pipe.HIncrBy(ctx, key, fieldWins, 0)
			pipe.HIncrBy(ctx, key, fieldLosses, 1)
			pipe.SAdd(ctx, playersKey, id)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetLeaderboard loads every player and ranks them
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	all, err := r.ListStats(ctx)
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Entries: Rank(all, input.Limit),
	}, nil
}

// ListStats reads every player hash in one pipeline
func (r *redisRepository) ListStats(ctx context.Context) ([]*models.PlayerStats, error) {
	ids, err := r.client.SMembers(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	sort.Strings(ids)

	if len(ids) == 0 {
		return []*models.PlayerStats{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, statsKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	all := make([]*models.PlayerStats, 0, len(ids))
	for i, id := range ids {
		s, err := parseStats(id, cmds[i].Val())
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}

	return all, nil
}

func parseStats(userID string, fields map[string]string) (*models.PlayerStats, error) {
	s := &models.PlayerStats{UserID: userID}

	for name, target := range map[string]*uint{
		fieldGamesPlayed: &s.GamesPlayed,
		fieldWins:        &s.Wins,
		fieldLosses:      &s.Losses,
	} {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s for %s: %w", name, userID, err)
		}
		*target = uint(v)
	}

	return s, nil
}

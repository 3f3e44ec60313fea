package gamelog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Keys for Redis
	counterKey     = "game_log:last_game_number"
	entryKeyPrefix = "game_log:entry:"
	entriesKey     = "game_log:entries"

	finalizeRetries = 3
)

// appendStartScript stores a new entry, indexes it and raises the counter to
// at least its number. Returns 0 when the entry already exists.
var appendStartScript = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('ZADD', KEYS[2], ARGV[2], ARGV[2])
local last = tonumber(redis.call('GET', KEYS[3]) or '0')
if tonumber(ARGV[2]) > last then
	redis.call('SET', KEYS[3], ARGV[2])
end
return 1
`)

// Config holds configuration for the Redis game log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game log repository
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

func entryKey(gameNumber uint64) string {
	return entryKeyPrefix + strconv.FormatUint(gameNumber, 10)
}

// NextGameNumber increments the counter with INCR
func (r *redisRepository) NextGameNumber(ctx context.Context) (uint64, error) {
	n, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment game counter: %w", err)
	}

	return uint64(n), nil
}

// AppendStart stores the entry if no entry with the same number exists and
// keeps the counter at or above the entry's number
func (r *redisRepository) AppendStart(ctx context.Context, input *AppendStartInput) error {
	if err := validateStart(input); err != nil {
		return err
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	number := strconv.FormatUint(input.Entry.GameNumber, 10)
	keys := []string{entryKey(input.Entry.GameNumber), entriesKey, counterKey}
	created, err := appendStartScript.Run(ctx, r.client, keys, entryJSON, number).Int()
	if err != nil {
		return fmt.Errorf("failed to append game: %w", err)
	}
	if created == 0 {
		return ErrDuplicateEntry
	}

	return nil
}

// Finalize resolves the entry under WATCH so two finalizers cannot both succeed
func (r *redisRepository) Finalize(ctx context.Context, input *FinalizeInput) (*models.GameLogEntry, error) {
	if err := validateFinalize(input); err != nil {
		return nil, err
	}

	key := entryKey(input.GameNumber)
	var resolved *models.GameLogEntry

	txf := func(tx *redis.Tx) error {
		entry, err := r.readEntry(ctx, tx, key)
		if err != nil {
			return err
		}

		resolved, err = finalize(entry, input)
		if err != nil {
			return err
		}

		entryJSON, err := json.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, entryJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < finalizeRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return resolved, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		var logErr LogError
		if errors.As(err, &logErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to finalize game: %w", err)
	}

	return nil, fmt.Errorf("failed to finalize game %d: too much contention", input.GameNumber)
}

// GetEntry retrieves an entry by game number
func (r *redisRepository) GetEntry(ctx context.Context, input *GetEntryInput) (*models.GameLogEntry, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return r.readEntry(ctx, r.client, entryKey(input.GameNumber))
}

// Search reads the index newest first. "all" only fetches as many entries as it returns.
func (r *redisRepository) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stop := int64(-1)
	query := strings.ToLower(strings.TrimSpace(input.Query))
	if query == "" || query == SearchAll {
		stop = int64(clampLimit(input.Limit)) - 1
	}

	numbers, err := r.client.ZRevRange(ctx, entriesKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	if len(numbers) == 0 {
		return &SearchOutput{Entries: []*models.GameLogEntry{}}, nil
	}

	keys := make([]string, len(numbers))
	for i, n := range numbers {
		keys[i] = entryKeyPrefix + n
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}

	entries := make([]*models.GameLogEntry, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// indexed but missing, skip it
			continue
		}
		var entry models.GameLogEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", keys[i], err)
		}
		entries = append(entries, &entry)
	}

	return &SearchOutput{
		Entries: filter(entries, query, input.Limit),
	}, nil
}

func (r *redisRepository) readEntry(ctx context.Context, c redis.Cmdable, key string) (*models.GameLogEntry, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	var entry models.GameLogEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return &entry, nil
}

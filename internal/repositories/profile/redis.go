package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/squadup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix = "profile:"
	whitelistKey     = "host_whitelist"
	whitelistSeqKey  = "host_whitelist:seq"
)

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
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

// SaveProfile persists a profile to Redis
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if err := validateProfile(input); err != nil {
		return err
	}

	profileJSON, err := json.Marshal(input.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.Profile.UserID)
	if err := r.client.Set(ctx, profileKey, profileJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by user ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.UserID)
	profileJSON, err := r.client.Get(ctx, profileKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	profile.UserID = input.UserID

	return &profile, nil
}

// AddHost adds the user to the whitelist sorted set, scored by insertion order
func (r *redisRepository) AddHost(ctx context.Context, input *AddHostInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	exists, err := r.IsHost(ctx, &IsHostInput{UserID: input.UserID})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	seq, err := r.client.Incr(ctx, whitelistSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to add host: %w", err)
	}

	// NX keeps the original position if another caller won the race
	err = r.client.ZAddNX(ctx, whitelistKey, redis.Z{Score: float64(seq), Member: input.UserID}).Err()
	if err != nil {
		return fmt.Errorf("failed to add host: %w", err)
	}

	return nil
}

// IsHost checks whitelist membership
func (r *redisRepository) IsHost(ctx context.Context, input *IsHostInput) (bool, error) {
	if input == nil || input.UserID == "" {
		return false, errors.New("input and user ID cannot be empty")
	}

	_, err := r.client.ZScore(ctx, whitelistKey, input.UserID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check host: %w", err)
	}

	return true, nil
}

// ListHosts returns every whitelisted user ID
func (r *redisRepository) ListHosts(ctx context.Context) ([]string, error) {
	hosts, err := r.client.ZRange(ctx, whitelistKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list hosts: %w", err)
	}

	return hosts, nil
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/squadup/internal/config"
	gamelogRepo "github.com/KirkDiggler/squadup/internal/repositories/gamelog"
	profileRepo "github.com/KirkDiggler/squadup/internal/repositories/profile"
	statsRepo "github.com/KirkDiggler/squadup/internal/repositories/stats"
	"github.com/redis/go-redis/v9"
)

// stores are the repositories for the configured backend
type stores struct {
	profiles profileRepo.Repository
	stats    statsRepo.Repository
	gameLog  gamelogRepo.Repository
	close    func() error
}

func openStores(ctx context.Context, cfg config.StorageConfig) (*stores, error) {
	if cfg.Backend == config.BackendRedis {
		return openRedisStores(ctx, cfg)
	}
	return openJSONStores(cfg)
}

func openJSONStores(cfg config.StorageConfig) (*stores, error) {
	profiles, err := profileRepo.NewJSON(&profileRepo.JSONConfig{DataDir: cfg.DataDir})
	if err != nil {
		return nil, fmt.Errorf("failed to open profiles: %w", err)
	}

	stats, err := statsRepo.NewJSON(&statsRepo.JSONConfig{DataDir: cfg.DataDir})
	if err != nil {
		return nil, fmt.Errorf("failed to open stats: %w", err)
	}

	gameLog, err := gamelogRepo.NewJSON(&gamelogRepo.JSONConfig{DataDir: cfg.DataDir})
	if err != nil {
		return nil, fmt.Errorf("failed to open game log: %w", err)
	}

	return &stores{
		profiles: profiles,
		stats:    stats,
		gameLog:  gameLog,
		close:    func() error { return nil },
	}, nil
}

func openRedisStores(ctx context.Context, cfg config.StorageConfig) (*stores, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	profiles, err := profileRepo.NewRedis(&profileRepo.Config{RedisClient: client})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	stats, err := statsRepo.NewRedis(&statsRepo.Config{RedisClient: client})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create stats repository: %w", err)
	}

	gameLog, err := gamelogRepo.NewRedis(&gamelogRepo.Config{RedisClient: client})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create game log repository: %w", err)
	}

	return &stores{
		profiles: profiles,
		stats:    stats,
		gameLog:  gameLog,
		close:    client.Close,
	}, nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefixes. Flight list entries are invalidated as a group whenever a
// flight or ticket write happens, so they all share one prefix.
const (
	FlightListPrefix = "flights:"
	AuthPrefix       = "auth:"
)

type Config struct {
	Addr           string
	Password       string
	DB             int
	FlightsTTLSec  int
	AuthTTLSec     int
	DialTimeoutSec int
}

// Client is a thin JSON cache over Redis/Valkey.
type Client struct {
	rdb        *redis.Client
	flightsTTL time.Duration
	authTTL    time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  time.Duration(cfg.DialTimeoutSec) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.DialTimeoutSec)*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to cache: %w", err)
	}

	slog.Info("Connected to cache", "addr", cfg.Addr, "db", cfg.DB)

	return &Client{
		rdb:        rdb,
		flightsTTL: time.Duration(cfg.FlightsTTLSec) * time.Second,
		authTTL:    time.Duration(cfg.AuthTTLSec) * time.Second,
	}, nil
}

// Get unmarshals the cached value for key into dest. The second return
// value is false on a miss.
func (c *Client) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// DeleteByPrefix removes every key under prefix. Used to drop all cached
// flight listings after a write.
func (c *Client) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan %s: %w", prefix, err)
	}
	return nil
}

func (c *Client) FlightsTTL() time.Duration {
	return c.flightsTTL
}

func (c *Client) AuthTTL() time.Duration {
	return c.authTTL
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

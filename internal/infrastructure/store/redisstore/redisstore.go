// Package redisstore implements the whole-document store on Redis: one string
// key per logical collection holding the same JSON blob the file driver
// writes.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a client, validates connectivity with a ping, and
// returns a Store over it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, *Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, &Store{client: client}, nil
}

// Store persists each logical collection under grocery:<collection>.
type Store struct {
	client *redis.Client
}

func (s *Store) key(collection string) string {
	return "grocery:" + collection
}

func (s *Store) Load(ctx context.Context, collection string, out any) (bool, error) {
	data, err := s.client.Get(ctx, s.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis store: get %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("redis store: decode %s: %w", collection, err)
	}
	return true, nil
}

func (s *Store) Save(ctx context.Context, collection string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("redis store: encode %s: %w", collection, err)
	}
	if err := s.client.Set(ctx, s.key(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("redis store: set %s: %w", collection, err)
	}
	return nil
}

// Package cache provides a redis-backed cache of each owner's idea list.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "ideas:owner:"
	generationPrefix = "ideas:gen:"
)

// errStaleGeneration aborts a Set whose list was read before the last
// invalidation.
var errStaleGeneration = errors.New("cache generation moved")

// cachedIdea is the stored representation of an idea
type cachedIdea struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Stage       string    `json:"stage"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListCache stores List results keyed by owner
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache connects to redisURL and verifies the connection
func NewListCache(redisURL string, ttl time.Duration) (*ListCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewListCacheWithClient(client, ttl), nil
}

// NewListCacheWithClient creates a cache from an existing client
func NewListCacheWithClient(client *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

func (c *ListCache) key(ownerID string) string {
	return keyPrefix + ownerID
}

func (c *ListCache) generationKey(ownerID string) string {
	return generationPrefix + ownerID
}

// Generation returns the owner's invalidation counter, 0 before the first
// invalidation. Read it before loading the list that will be passed to Set.
func (c *ListCache) Generation(ctx context.Context, ownerID string) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey(ownerID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("get cache generation: %w", err)
	}
	return gen, nil
}

// Get returns the cached list. The boolean is false on a cache miss.
func (c *ListCache) Get(ctx context.Context, ownerID string) ([]*domain.Idea, bool, error) {
	data, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached ideas: %w", err)
	}

	var cached []cachedIdea
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached ideas: %w", err)
	}

	ideas := make([]*domain.Idea, len(cached))
	for i, ci := range cached {
		ideas[i] = &domain.Idea{
			ID:          ci.ID,
			OwnerID:     ci.OwnerID,
			Title:       ci.Title,
			Description: ci.Description,
			Stage:       domain.Stage(ci.Stage),
			Position:    ci.Position,
			CreatedAt:   ci.CreatedAt,
			UpdatedAt:   ci.UpdatedAt,
		}
	}
	return ideas, true, nil
}

// Set stores the list for ownerID if the owner's generation still equals gen.
// It reports false without error when an invalidation happened since gen was
// read, so a list loaded before a mutation never overwrites the invalidation.
func (c *ListCache) Set(ctx context.Context, ownerID string, gen int64, ideas []*domain.Idea) (bool, error) {
	cached := make([]cachedIdea, len(ideas))
	for i, idea := range ideas {
		cached[i] = cachedIdea{
			ID:          idea.ID,
			OwnerID:     idea.OwnerID,
			Title:       idea.Title,
			Description: idea.Description,
			Stage:       string(idea.Stage),
			Position:    idea.Position,
			CreatedAt:   idea.CreatedAt,
			UpdatedAt:   idea.UpdatedAt,
		}
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return false, fmt.Errorf("marshal ideas: %w", err)
	}

	genKey := c.generationKey(ownerID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(ownerID), data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache ideas: %w", err)
	}
	return true, nil
}

// Invalidate drops the cached list for ownerID and advances its generation
// in one transaction.
func (c *ListCache) Invalidate(ctx context.Context, ownerID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey(ownerID))
		pipe.Del(ctx, c.key(ownerID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate cached ideas: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *ListCache) Close() error {
	return c.client.Close()
}

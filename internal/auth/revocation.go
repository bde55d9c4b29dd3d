package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// RevocationCache remembers logged-out token ids until their natural expiry,
// at which point the token is dead anyway.
type RevocationCache interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryRevocationCache is the single-process default.
type MemoryRevocationCache struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryRevocationCache() *MemoryRevocationCache {
	return &MemoryRevocationCache{revoked: make(map[string]time.Time)}
}

func (c *MemoryRevocationCache) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (c *MemoryRevocationCache) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	expiry, ok := c.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(c.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// RedisRevocationCache shares revocations across replicas; the key TTL does
// the cleanup.
type RedisRevocationCache struct {
	Client *redis.Client
}

func NewRedisRevocationCache(client *redis.Client) *RedisRevocationCache {
	return &RedisRevocationCache{Client: client}
}

func (c *RedisRevocationCache) key(tokenID string) string {
	return "revoked_token:" + tokenID
}

func (c *RedisRevocationCache) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.Client.Set(ctx, c.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation in redis: %w", err)
	}
	return nil
}

func (c *RedisRevocationCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := c.Client.Exists(ctx, c.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revocation in redis: %w", err)
	}
	return n > 0, nil
}

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stylesphere/storefront/internal/infrastructure/config"
)

// TokenBlacklist invalidates JWT tokens before they expire (e.g., on logout)
type TokenBlacklist interface {
	// AddToBlacklist adds a token's JTI (JWT ID) to the blacklist.
	// ttl should be set to the remaining time until token expiration
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error

	// IsBlacklisted checks if a token's JTI is in the blacklist
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist using Redis
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisTokenBlacklist creates a new Redis-based token blacklist
func NewRedisTokenBlacklist(cfg config.RedisConfig) (*RedisTokenBlacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for token blacklist: %w", err)
	}

	return NewRedisTokenBlacklistWithClient(client), nil
}

// NewRedisTokenBlacklistWithClient creates a token blacklist with an existing Redis client
func NewRedisTokenBlacklistWithClient(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "token:blacklist:",
	}
}

func (b *RedisTokenBlacklist) jtiKey(jti string) string {
	return b.keyPrefix + "jti:" + jti
}

// AddToBlacklist adds a token's JTI to the blacklist
func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted checks if a token's JTI is in the blacklist
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := b.client.Exists(ctx, b.jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists > 0, nil
}

// Close closes the Redis client
func (b *RedisTokenBlacklist) Close() error {
	return b.client.Close()
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist provides an in-memory implementation for testing.
// Not suitable for production with multiple instances
type InMemoryTokenBlacklist struct {
	mu           sync.Mutex
	jtiBlacklist map[string]time.Time // JTI -> expiration time
}

// NewInMemoryTokenBlacklist creates a new in-memory token blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		jtiBlacklist: make(map[string]time.Time),
	}
}

// AddToBlacklist adds a token's JTI to the in-memory blacklist
func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jtiBlacklist[jti] = time.Now().Add(ttl)
	return nil
}

// IsBlacklisted checks if a token's JTI is blacklisted (and not expired)
func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expiration, exists := b.jtiBlacklist[jti]
	if !exists {
		return false, nil
	}

	if time.Now().After(expiration) {
		delete(b.jtiBlacklist, jti)
		return false, nil
	}

	return true, nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)

package auth

import (
	"context"
	"time"

	"phishing-simulator-backend/internal/repository"

	"github.com/redis/go-redis/v9"
)

// Blacklist stores revoked refresh-token ids until they would have expired
type Blacklist interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// DBBlacklist keeps revoked tokens in the revoked_tokens table
type DBBlacklist struct {
	repo repository.RevokedTokenRepositoryInterface
}

// NewDBBlacklist creates a database-backed blacklist
func NewDBBlacklist(repo repository.RevokedTokenRepositoryInterface) *DBBlacklist {
	return &DBBlacklist{repo: repo}
}

// Revoke implements Blacklist
func (b *DBBlacklist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	return b.repo.Revoke(jti, expiresAt)
}

// IsRevoked implements Blacklist
func (b *DBBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return b.repo.IsRevoked(jti)
}

// RedisBlacklist keeps revoked tokens as expiring redis keys
type RedisBlacklist struct {
	client *redis.Client
	prefix string
}

// NewRedisBlacklist creates a redis-backed blacklist
func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client, prefix: "token_blacklist:"}
}

// Revoke implements Blacklist
func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, b.prefix+jti, "1", ttl).Err()
}

// IsRevoked implements Blacklist
func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, b.prefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

package services

import (
	"context"
	"time"

	"partnerhub/internal/datastore"
	"partnerhub/internal/models"
	"partnerhub/internal/pkg/caching"

	"github.com/uptrace/bun"
)

// Revocations remembers signed-out tokens until they expire.
type Revocations interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RevocationsCache keeps revocations in the redis cache. Entries expire with the token.
type RevocationsCache struct {
	cache caching.Cache
}

func NewRevocationsCache(cache caching.Cache) *RevocationsCache {
	return &RevocationsCache{cache}
}

func (revocations *RevocationsCache) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return revocations.cache.Set(ctx, DBKeyRevokedToken(tokenID), true, ttl)
}

func (revocations *RevocationsCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return revocations.cache.Exists(ctx, DBKeyRevokedToken(tokenID)), nil
}

// RevocationsStore keeps revocations in the database, for deployments without redis.
type RevocationsStore struct {
	postgresDB *bun.DB
}

func NewRevocationsStore(postgresDB *bun.DB) *RevocationsStore {
	return &RevocationsStore{postgresDB}
}

func (revocations *RevocationsStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	now := time.Now().UTC()
	if !expiresAt.After(now) {
		return nil
	}

	// expired rows are dead weight once their token stops verifying
	if _, err := datastore.DeleteExpiredRevokedTokens(ctx, revocations.postgresDB, now); err != nil {
		return err
	}

	return datastore.CreateRevokedToken(ctx, revocations.postgresDB, &models.RevokedToken{
		ID:        tokenID,
		ExpiresAt: expiresAt.UTC(),
	})
}

func (revocations *RevocationsStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return datastore.IsTokenRevoked(ctx, revocations.postgresDB, tokenID, time.Now().UTC())
}

package services

import (
	"context"
	"testing"
	"time"

	"partnerhub/internal/config"
	"partnerhub/internal/datastore/datastoretest"
	"partnerhub/internal/interfaces"
	"partnerhub/internal/models"
	"partnerhub/internal/pkg/caching"

	"github.com/go-redis/redis_rate/v10"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/samber/do"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, string, redis_rate.Limit) error {
	return limiter.ErrRateLimited
}

func newTestContainer(t *testing.T, rateLimiter interfaces.Limiter) (*do.Injector, *bun.DB) {
	t.Helper()

	db := datastoretest.NewDB(t)
	injector := do.New()
	do.ProvideValue(injector, &config.Config{
		Mode:                    config.ModeDebug,
		JWTSecret:               "test-secret",
		JWTTTL:                  time.Hour,
		LoginRateLimitPerMinute: 10,
	})
	do.ProvideValue(injector, db)
	do.ProvideValue(injector, zap.NewNop())
	do.ProvideValue[caching.Cache](injector, caching.NewCacheLocal(1000, time.Hour))
	do.ProvideValue[Revocations](injector, NewRevocationsStore(db))
	do.ProvideValue(injector, rateLimiter)
	Provide(injector)
	return injector, db
}

func seededUser(t *testing.T, db *bun.DB, username string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.NewSelect().Model(&user).Where("username = ?", username).Scan(context.Background()))
	return &user
}

func requireKind(t *testing.T, err error, kind errorx.Kind) {
	t.Helper()
	var target *errorx.Error
	require.ErrorAs(t, err, &target)
	require.True(t, target.Of(kind), "%s: %s", target.Code(), err.Error())
}

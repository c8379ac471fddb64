package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.EqualError(t, err, "missing env: DB_DSN")

	t.Setenv("DB_DSN", "postgres://localhost/partners")
	_, err = Load()
	require.EqualError(t, err, "missing env: JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/partners")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("API_MODE", "")
	t.Setenv("API_ORIGINS", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("LOGIN_RATE_LIMIT_PER_MINUTE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ModeProduction, cfg.Mode)
	require.True(t, cfg.IsProduction())
	require.Equal(t, []string{"*"}, cfg.Origins)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
	require.Equal(t, 10, cfg.LoginRateLimitPerMinute)
	require.Empty(t, cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/partners")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("API_MODE", ModeDebug)
	t.Setenv("API_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.IsProduction())
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins)
	require.Equal(t, 2*time.Hour, cfg.JWTTTL)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hiendaovinh/toolkit/pkg/env"
	"github.com/spf13/viper"
)

const (
	ModeProduction = "production"
	ModeDebug      = "debug"
)

type Config struct {
	Mode                    string
	Origins                 []string
	DBDSN                   string
	DBPassword              string
	JWTSecret               string
	JWTTTL                  time.Duration
	RedisURL                string
	LoginRateLimitPerMinute int
}

func (cfg *Config) IsProduction() bool {
	return cfg.Mode == ModeProduction
}

// Load reads the configuration from the environment. DB_DSN and JWT_SECRET are required.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_MODE", ModeProduction)
	v.SetDefault("API_ORIGINS", "*")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("LOGIN_RATE_LIMIT_PER_MINUTE", 10)

	vs, err := env.EnvsRequired("DB_DSN", "JWT_SECRET")
	if err != nil {
		return nil, err
	}

	ttl := v.GetDuration("JWT_TTL")
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL %q", v.GetString("JWT_TTL"))
	}

	return &Config{
		Mode:                    v.GetString("API_MODE"),
		Origins:                 strings.Split(v.GetString("API_ORIGINS"), ","),
		DBDSN:                   vs["DB_DSN"],
		DBPassword:              v.GetString("DB_PASSWORD"),
		JWTSecret:               vs["JWT_SECRET"],
		JWTTTL:                  ttl,
		RedisURL:                v.GetString("REDIS_URL"),
		LoginRateLimitPerMinute: v.GetInt("LOGIN_RATE_LIMIT_PER_MINUTE"),
	}, nil
}

package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"partnerhub/internal/api/handler"
	"partnerhub/internal/config"
	"partnerhub/internal/interfaces"
	"partnerhub/internal/pkg/caching"
	"partnerhub/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/db"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	container := NewContainer(cfg)
	defer container.Shutdown() //nolint:errcheck

	app := &cli.App{
		Name: "api",
		Commands: []*cli.Command{
			commandServer(container),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandServer(container *do.Injector) *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "0.0.0.0:8080",
				Usage: "serve address",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := do.MustInvoke[*config.Config](container)
			logger := do.MustInvoke[*zap.Logger](container)

			router, err := handler.New(&handler.Config{
				Container: container,
				Mode:      cfg.Mode,
				Origins:   cfg.Origins,
			})
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    c.String("addr"),
				Handler: router,
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errWg, errCtx := errgroup.WithContext(ctx)

			errWg.Go(func() error {
				logger.Info("listen and serve", zap.String("addr", c.String("addr")), zap.String("mode", cfg.Mode))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})

			errWg.Go(func() error {
				<-errCtx.Done()
				logger.Info("shutting down")
				return srv.Shutdown(context.TODO())
			})

			return errWg.Wait()
		},
	}
}

func NewContainer(cfg *config.Config) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		if cfg.IsProduction() {
			return zap.NewProduction()
		}
		return zap.NewDevelopment()
	})

	do.Provide(injector, func(i *do.Injector) (*bun.DB, error) {
		sqldb := sql.OpenDB(pgdriver.NewConnector(
			pgdriver.WithDSN(cfg.DBDSN),
			pgdriver.WithPassword(cfg.DBPassword),
		))

		return bun.NewDB(sqldb, pgdialect.New()), nil
	})

	services.Provide(injector)

	// without redis the cache stays in process, revocations live in the database and
	// logins are not throttled
	if cfg.RedisURL == "" {
		do.Provide(injector, func(i *do.Injector) (caching.Cache, error) {
			return caching.NewCacheLocal(10000, services.CACHE_TTL_5_MINS), nil
		})
		do.Provide(injector, func(i *do.Injector) (services.Revocations, error) {
			postgresDB, err := do.Invoke[*bun.DB](i)
			if err != nil {
				return nil, err
			}

			return services.NewRevocationsStore(postgresDB), nil
		})
		do.ProvideValue[interfaces.Limiter](injector, interfaces.NoopLimiter{})
		return injector
	}

	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		return db.InitRedis(&db.RedisConfig{
			URL: cfg.RedisURL,
		})
	})

	do.Provide(injector, func(i *do.Injector) (caching.Cache, error) {
		dbRedis, err := do.Invoke[*redis.Client](i)
		if err != nil {
			return nil, err
		}

		return caching.NewCacheRedis(dbRedis, true)
	})

	do.Provide(injector, func(i *do.Injector) (services.Revocations, error) {
		cache, err := do.Invoke[caching.Cache](i)
		if err != nil {
			return nil, err
		}

		return services.NewRevocationsCache(cache), nil
	})

	do.Provide(injector, func(i *do.Injector) (interfaces.Limiter, error) {
		dbRedis, err := do.Invoke[*redis.Client](i)
		if err != nil {
			return nil, err
		}

		a, err := limiter.NewLimiter(dbRedis)
		return a, err
	})

	return injector
}

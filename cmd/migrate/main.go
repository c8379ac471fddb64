package main

import (
	"database/sql"
	"log"
	"os"

	"partnerhub/internal/config"
	"partnerhub/internal/datastore"
	"partnerhub/internal/services"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"
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

	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(cfg),
			commandSeed(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create tables and indexes",
		Action: func(c *cli.Context) error {
			db := getDb(cfg)
			defer db.Close()

			if err := datastore.Migrate(c.Context, db); err != nil {
				return err
			}

			log.Println("migrated")
			return nil
		},
	}
}

func commandSeed(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "migrate then insert the demo users, partners and interactions",
		Action: func(c *cli.Context) error {
			ctx := c.Context
			db := getDb(cfg)
			defer db.Close()

			if err := datastore.Migrate(ctx, db); err != nil {
				return err
			}

			authentication, err := services.NewAuthentication(cfg.JWTSecret, cfg.JWTTTL, services.NewRevocationsStore(db))
			if err != nil {
				return err
			}

			if err := services.Seed(ctx, db, authentication); err != nil {
				return err
			}

			log.Printf("seeded, every account uses the password %q\n", services.SEED_PASSWORD)
			return nil
		},
	}
}

func getDb(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(cfg.DBDSN),
		pgdriver.WithPassword(cfg.DBPassword),
	))

	return bun.NewDB(sqldb, pgdialect.New())
}

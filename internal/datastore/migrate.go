package datastore

import (
	"context"

	"github.com/uptrace/bun"
)

// Migrate creates every table and index. Safe to run repeatedly.
func Migrate(ctx context.Context, db bun.IDB) error {
	steps := []func(context.Context, bun.IDB) error{
		CreateTableUser,
		CreateTablePartner,
		CreateTablePartnerMetrics,
		CreateTableInteraction,
		CreateTableRevokedToken,
	}
	for _, step := range steps {
		if err := step(ctx, db); err != nil {
			return err
		}
	}
	return nil
}

package datastore

import (
	"context"
	"time"

	"partnerhub/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableRevokedToken(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().Model((*models.RevokedToken)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.RevokedToken)(nil)).Index("index_revoked_tokens_expires_at").IfNotExists().Column("expires_at").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

// CreateRevokedToken is idempotent: revoking the same token twice keeps the first row.
func CreateRevokedToken(ctx context.Context, db bun.IDB, token *models.RevokedToken) error {
	_, err := db.NewInsert().Model(token).On("CONFLICT (id) DO NOTHING").Exec(ctx)
	return err
}

func IsTokenRevoked(ctx context.Context, db bun.IDB, tokenID string, now time.Time) (bool, error) {
	return db.NewSelect().Model((*models.RevokedToken)(nil)).
		Where("id = ?", tokenID).
		Where("expires_at > ?", now).
		Exists(ctx)
}

// DeleteExpiredRevokedTokens drops rows for tokens that no longer verify anyway.
func DeleteExpiredRevokedTokens(ctx context.Context, db bun.IDB, now time.Time) (int64, error) {
	res, err := db.NewDelete().Model((*models.RevokedToken)(nil)).Where("expires_at <= ?", now).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

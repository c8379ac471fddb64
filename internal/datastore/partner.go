package datastore

import (
	"context"
	"database/sql"
	"errors"

	"partnerhub/internal/models"

	"github.com/uptrace/bun"
)

func CreateTablePartner(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().Model((*models.Partner)(nil)).IfNotExists().
		ForeignKey(`("manager_id") REFERENCES "users" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Partner)(nil)).Index("index_real_estate_partners_manager_id").IfNotExists().Column("manager_id").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func CreatePartner(ctx context.Context, db bun.IDB, partner *models.Partner) (*models.Partner, error) {
	_, err := db.NewInsert().Model(partner).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return partner, nil
}

func FindPartnerByID(ctx context.Context, db bun.IDB, partnerID string) (*models.Partner, error) {
	var partner models.Partner
	err := db.NewSelect().Model(&partner).Where("id = ?", partnerID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func GetAllPartners(ctx context.Context, db bun.IDB) ([]models.Partner, error) {
	var partners []models.Partner
	err := db.NewSelect().Model(&partners).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return partners, nil
}

func GetPartnersByManagerID(ctx context.Context, db bun.IDB, managerID string) ([]models.Partner, error) {
	var partners []models.Partner
	err := db.NewSelect().Model(&partners).Where("manager_id = ?", managerID).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return partners, nil
}

func UpdatePartner(ctx context.Context, db bun.IDB, partner *models.Partner) (*models.Partner, error) {
	_, err := db.NewUpdate().Model(partner).WherePK().Exec(ctx)
	if err != nil {
		return nil, err
	}
	return partner, nil
}

// DeletePartner removes the partner together with its metrics and interactions.
func DeletePartner(ctx context.Context, db bun.IDB, partnerID string) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*models.Interaction)(nil)).Where("partner_id = ?", partnerID).Exec(ctx)
		if err != nil {
			return err
		}

		_, err = tx.NewDelete().Model((*models.PartnerMetrics)(nil)).Where("partner_id = ?", partnerID).Exec(ctx)
		if err != nil {
			return err
		}

		_, err = tx.NewDelete().Model((*models.Partner)(nil)).Where("id = ?", partnerID).Exec(ctx)
		return err
	})
}

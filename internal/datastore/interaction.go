package datastore

import (
	"context"

	"partnerhub/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableInteraction(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().Model((*models.Interaction)(nil)).IfNotExists().
		ForeignKey(`("partner_id") REFERENCES "real_estate_partners" ("id") ON DELETE CASCADE`).
		ForeignKey(`("manager_id") REFERENCES "users" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Interaction)(nil)).Index("index_interactions_manager_id").IfNotExists().Column("manager_id").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Interaction)(nil)).Index("index_interactions_partner_id").IfNotExists().Column("partner_id").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func CreateInteraction(ctx context.Context, db bun.IDB, interaction *models.Interaction) (*models.Interaction, error) {
	_, err := db.NewInsert().Model(interaction).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return interaction, nil
}

func GetAllInteractions(ctx context.Context, db bun.IDB) ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := db.NewSelect().Model(&interactions).Order("date DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

func GetInteractionsByPartnerID(ctx context.Context, db bun.IDB, partnerID string) ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := db.NewSelect().Model(&interactions).Where("partner_id = ?", partnerID).Order("date DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

func GetInteractionsByManagerID(ctx context.Context, db bun.IDB, managerID string) ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := db.NewSelect().Model(&interactions).Where("manager_id = ?", managerID).Order("date DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

package datastore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"partnerhub/internal/models"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func CreateTablePartnerMetrics(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().Model((*models.PartnerMetrics)(nil)).IfNotExists().
		ForeignKey(`("partner_id") REFERENCES "real_estate_partners" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.PartnerMetrics)(nil)).Index("index_partner_metrics_partner_id").IfNotExists().Unique().Column("partner_id").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func CreatePartnerMetrics(ctx context.Context, db bun.IDB, metrics *models.PartnerMetrics) (*models.PartnerMetrics, error) {
	_, err := db.NewInsert().Model(metrics).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

// GetPartnerMetrics returns nil without an error when the partner has no metrics row.
func GetPartnerMetrics(ctx context.Context, db bun.IDB, partnerID string) (*models.PartnerMetrics, error) {
	var metrics models.PartnerMetrics
	err := db.NewSelect().Model(&metrics).Where("partner_id = ?", partnerID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}

// UpsertPartnerMetrics overwrites sales, reservations and roi of the partner's row, creating
// it when missing. last_contact is left untouched on conflict.
func UpsertPartnerMetrics(ctx context.Context, db bun.IDB, metrics *models.PartnerMetrics) (*models.PartnerMetrics, error) {
	if metrics.ID == "" {
		metrics.ID = uuid.NewString()
	}
	metrics.UpdatedAt = time.Now().UTC()

	_, err := db.NewInsert().Model(metrics).
		On("CONFLICT (partner_id) DO UPDATE").
		Set("sales = EXCLUDED.sales").
		Set("reservations = EXCLUDED.reservations").
		Set("roi = EXCLUDED.roi").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := GetPartnerMetrics(ctx, db, metrics.PartnerID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, sql.ErrNoRows
	}
	return stored, nil
}

// TouchPartnerLastContact sets last_contact of the partner's metrics row. A partner without
// a metrics row is left as is.
func TouchPartnerLastContact(ctx context.Context, db bun.IDB, partnerID string, date time.Time) error {
	_, err := db.NewUpdate().Model((*models.PartnerMetrics)(nil)).
		Set("last_contact = ?", date).
		Set("updated_at = ?", time.Now().UTC()).
		Where("partner_id = ?", partnerID).
		Exec(ctx)
	return err
}

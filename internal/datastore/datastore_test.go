package datastore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"partnerhub/internal/datastore"
	"partnerhub/internal/datastore/datastoretest"
	"partnerhub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func createManager(t *testing.T, db bun.IDB, username string) *models.User {
	t.Helper()
	user, err := datastore.CreateUser(context.Background(), db, &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  "hash",
		Name:      username,
		Role:      models.RoleManager,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return user
}

func createPartner(t *testing.T, db bun.IDB, managerID string, createdAt time.Time) *models.Partner {
	t.Helper()
	partner, err := datastore.CreatePartner(context.Background(), db, &models.Partner{
		ID:             uuid.NewString(),
		Name:           "Imobiliária Teste",
		Type:           models.PartnerTypeAgency,
		Classification: models.ClassificationBronze,
		Relationship:   models.RelationshipCold,
		ManagerID:      managerID,
		City:           "Santos",
		ContactName:    "Ana",
		Status:         models.PartnerStatusActive,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	})
	require.NoError(t, err)
	return partner
}

func createInteraction(t *testing.T, db bun.IDB, partnerID, managerID string, date time.Time) *models.Interaction {
	t.Helper()
	interaction, err := datastore.CreateInteraction(context.Background(), db, &models.Interaction{
		ID:        uuid.NewString(),
		PartnerID: partnerID,
		ManagerID: managerID,
		Type:      models.InteractionCall,
		Date:      date,
		Duration:  30,
		Quality:   4,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return interaction
}

func TestFindUserAbsent(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)

	user, err := datastore.FindUserByID(ctx, db, uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, user)

	user, err = datastore.FindUserByUsername(ctx, db, "nobody")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestGetAllManagersSkipsMasters(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)

	_, err := datastore.CreateUser(ctx, db, &models.User{
		ID:        uuid.NewString(),
		Username:  "admin",
		Password:  "hash",
		Name:      "Admin",
		Role:      models.RoleMaster,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	manager := createManager(t, db, "roberto")

	managers, err := datastore.GetAllManagers(ctx, db)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	require.Equal(t, manager.ID, managers[0].ID)
}

func TestPartnersNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	manager := createManager(t, db, "roberto")
	other := createManager(t, db, "fernanda")

	now := time.Now().UTC()
	older := createPartner(t, db, manager.ID, now.Add(-time.Hour))
	newer := createPartner(t, db, manager.ID, now)
	createPartner(t, db, other.ID, now)

	partners, err := datastore.GetPartnersByManagerID(ctx, db, manager.ID)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	require.Equal(t, newer.ID, partners[0].ID)
	require.Equal(t, older.ID, partners[1].ID)

	all, err := datastore.GetAllPartners(ctx, db)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMetricsAbsentIsNil(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	manager := createManager(t, db, "roberto")
	partner := createPartner(t, db, manager.ID, time.Now().UTC())

	metrics, err := datastore.GetPartnerMetrics(ctx, db, partner.ID)
	require.NoError(t, err)
	require.Nil(t, metrics)
}

func TestUpsertPartnerMetricsKeepsLastContact(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	manager := createManager(t, db, "roberto")
	partner := createPartner(t, db, manager.ID, time.Now().UTC())

	_, err := datastore.CreatePartnerMetrics(ctx, db, &models.PartnerMetrics{
		ID:        uuid.NewString(),
		PartnerID: partner.ID,
		ROI:       decimal.Zero,
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	contact := time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, datastore.TouchPartnerLastContact(ctx, db, partner.ID, contact))

	stored, err := datastore.UpsertPartnerMetrics(ctx, db, &models.PartnerMetrics{
		PartnerID:    partner.ID,
		Sales:        8,
		Reservations: 20,
		ROI:          decimal.RequireFromString("150.25"),
	})
	require.NoError(t, err)
	require.Equal(t, 8, stored.Sales)
	require.Equal(t, 20, stored.Reservations)
	require.Equal(t, "150.25", stored.ROI.StringFixed(2))
	require.NotNil(t, stored.LastContact)
	require.Equal(t, "2025-12-14", *models.FormatDate(stored.LastContact))
}

func TestUpsertPartnerMetricsCreatesMissingRow(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	manager := createManager(t, db, "roberto")
	partner := createPartner(t, db, manager.ID, time.Now().UTC())

	stored, err := datastore.UpsertPartnerMetrics(ctx, db, &models.PartnerMetrics{
		PartnerID: partner.ID,
		Sales:     1,
		ROI:       decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.Equal(t, 1, stored.Sales)
	require.Nil(t, stored.LastContact)
}

func TestDeletePartnerCascades(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	manager := createManager(t, db, "roberto")
	partner := createPartner(t, db, manager.ID, time.Now().UTC())
	kept := createPartner(t, db, manager.ID, time.Now().UTC())

	_, err := datastore.CreatePartnerMetrics(ctx, db, &models.PartnerMetrics{
		ID:        uuid.NewString(),
		PartnerID: partner.ID,
		ROI:       decimal.Zero,
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	createInteraction(t, db, partner.ID, manager.ID, time.Now().UTC())
	createInteraction(t, db, kept.ID, manager.ID, time.Now().UTC())

	require.NoError(t, datastore.DeletePartner(ctx, db, partner.ID))

	found, err := datastore.FindPartnerByID(ctx, db, partner.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	metrics, err := datastore.GetPartnerMetrics(ctx, db, partner.ID)
	require.NoError(t, err)
	require.Nil(t, metrics)

	interactions, err := datastore.GetInteractionsByPartnerID(ctx, db, partner.ID)
	require.NoError(t, err)
	require.Empty(t, interactions)

	interactions, err = datastore.GetInteractionsByManagerID(ctx, db, manager.ID)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	require.Equal(t, kept.ID, interactions[0].PartnerID)
}

func TestInteractionsNewestDateFirst(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	manager := createManager(t, db, "roberto")
	partner := createPartner(t, db, manager.ID, time.Now().UTC())

	day := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	first := createInteraction(t, db, partner.ID, manager.ID, day)
	second := createInteraction(t, db, partner.ID, manager.ID, day.AddDate(0, 0, 5))

	interactions, err := datastore.GetAllInteractions(ctx, db)
	require.NoError(t, err)
	require.Len(t, interactions, 2)
	require.Equal(t, second.ID, interactions[0].ID)
	require.Equal(t, first.ID, interactions[1].ID)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := datastoretest.NewDB(t)
	require.NoError(t, datastore.Migrate(context.Background(), db))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	createManager(t, db, "roberto.almeida")

	_, err := datastore.CreateUser(ctx, db, &models.User{
		ID:        uuid.NewString(),
		Username:  "roberto.almeida",
		Password:  "hash",
		Name:      "Roberto",
		Role:      models.RoleManager,
		CreatedAt: time.Now().UTC(),
	})
	require.Error(t, err)
	require.True(t, datastore.IsUniqueViolation(err))

	require.False(t, datastore.IsUniqueViolation(nil))
	require.False(t, datastore.IsUniqueViolation(errors.New("connection refused")))
}

func TestRevokedTokens(t *testing.T) {
	ctx := context.Background()
	db := datastoretest.NewDB(t)
	now := time.Now().UTC()

	require.NoError(t, datastore.CreateRevokedToken(ctx, db, &models.RevokedToken{ID: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, datastore.CreateRevokedToken(ctx, db, &models.RevokedToken{ID: "live", ExpiresAt: now.Add(2 * time.Hour)}))
	require.NoError(t, datastore.CreateRevokedToken(ctx, db, &models.RevokedToken{ID: "stale", ExpiresAt: now.Add(-time.Hour)}))

	revoked, err := datastore.IsTokenRevoked(ctx, db, "live", now)
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, err = datastore.IsTokenRevoked(ctx, db, "stale", now)
	require.NoError(t, err)
	require.False(t, revoked)

	deleted, err := datastore.DeleteExpiredRevokedTokens(ctx, db, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	revoked, err = datastore.IsTokenRevoked(ctx, db, "live", now)
	require.NoError(t, err)
	require.True(t, revoked)
}

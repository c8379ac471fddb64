package services

import (
	"context"
	"time"

	"partnerhub/internal/datastore"
	"partnerhub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

const SEED_PASSWORD = "password123"

type seedPartner struct {
	partner     models.Partner
	manager     int
	sales       int
	reserved    int
	roi         string
	lastContact string
}

type seedInteraction struct {
	partner  int
	manager  int
	kind     models.InteractionType
	date     string
	duration int
	quality  int
	notes    string
}

func avatar(url string) *string {
	return &url
}

// Seed fills an empty database with a master, three managers, their partners and a few
// interactions. Every account uses SEED_PASSWORD.
func Seed(ctx context.Context, db *bun.DB, authentication *Authentication) error {
	hash, err := authentication.HashPassword(SEED_PASSWORD)
	if err != nil {
		return err
	}

	users := []models.User{
		{Username: "admin", Name: "Master Admin", Role: models.RoleMaster},
		{Username: "roberto.almeida", Name: "Roberto Almeida", Role: models.RoleManager, Avatar: avatar("https://i.pravatar.cc/150?u=m1")},
		{Username: "fernanda.costa", Name: "Fernanda Costa", Role: models.RoleManager, Avatar: avatar("https://i.pravatar.cc/150?u=m2")},
		{Username: "carlos.silva", Name: "Carlos Silva", Role: models.RoleManager, Avatar: avatar("https://i.pravatar.cc/150?u=m3")},
	}

	partners := []seedPartner{
		{models.Partner{Name: "Imobiliária Elite", Type: models.PartnerTypeAgency, Classification: models.ClassificationGold, Relationship: models.RelationshipStrategic, City: "São Paulo", ContactName: "Ricardo"}, 1, 8, 20, "150", "2025-12-14"},
		{models.Partner{Name: "Corretor João", Type: models.PartnerTypeBroker, Classification: models.ClassificationSilver, Relationship: models.RelationshipHot, City: "São Paulo", ContactName: "João"}, 1, 3, 8, "90", "2025-12-10"},
		{models.Partner{Name: "Imobiliária Nova Era", Type: models.PartnerTypeAgency, Classification: models.ClassificationBronze, Relationship: models.RelationshipWarm, City: "Campinas", ContactName: "Sônia"}, 2, 1, 4, "50", "2025-11-28"},
		{models.Partner{Name: "Imobiliária Prime", Type: models.PartnerTypeAgency, Classification: models.ClassificationGold, Relationship: models.RelationshipCold, City: "Santos", ContactName: "Pedro"}, 3, 0, 2, "20", "2025-10-15"},
	}

	interactions := []seedInteraction{
		{0, 1, models.InteractionStrategicLunch, "2025-12-14", 90, 5, "Alinhamento de metas para o próximo trimestre."},
		{1, 1, models.InteractionWhatsapp, "2025-12-15", 10, 3, "Envio de tabela atualizada."},
		{0, 1, models.InteractionInPersonMeeting, "2025-12-10", 60, 5, "Apresentação do novo empreendimento."},
		{2, 2, models.InteractionCall, "2025-11-28", 15, 3, "Follow-up de proposta enviada."},
	}

	now := time.Now().UTC()
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for i := range users {
			users[i].ID = uuid.NewString()
			users[i].Password = hash
			users[i].CreatedAt = now
			if _, err := datastore.CreateUser(ctx, tx, &users[i]); err != nil {
				return err
			}
		}

		for i := range partners {
			p := &partners[i]
			p.partner.ID = uuid.NewString()
			p.partner.ManagerID = users[p.manager].ID
			p.partner.Status = models.PartnerStatusActive
			p.partner.CreatedAt = now.Add(time.Duration(i) * time.Second)
			p.partner.UpdatedAt = p.partner.CreatedAt
			if _, err := datastore.CreatePartner(ctx, tx, &p.partner); err != nil {
				return err
			}

			lastContact, err := models.ParseDate(p.lastContact)
			if err != nil {
				return err
			}
			_, err = datastore.CreatePartnerMetrics(ctx, tx, &models.PartnerMetrics{
				ID:           uuid.NewString(),
				PartnerID:    p.partner.ID,
				Sales:        p.sales,
				Reservations: p.reserved,
				ROI:          decimal.RequireFromString(p.roi),
				LastContact:  &lastContact,
				UpdatedAt:    now,
			})
			if err != nil {
				return err
			}
		}

		for _, s := range interactions {
			date, err := models.ParseDate(s.date)
			if err != nil {
				return err
			}
			notes := s.notes
			_, err = datastore.CreateInteraction(ctx, tx, &models.Interaction{
				ID:        uuid.NewString(),
				PartnerID: partners[s.partner].partner.ID,
				ManagerID: users[s.manager].ID,
				Type:      s.kind,
				Date:      date,
				Duration:  s.duration,
				Quality:   s.quality,
				Notes:     &notes,
				CreatedAt: now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

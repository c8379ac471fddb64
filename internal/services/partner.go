package services

import (
	"context"
	"time"

	"partnerhub/internal/datastore"
	"partnerhub/internal/models"

	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

type ServicePartner struct {
	container  *do.Injector
	postgresDB *bun.DB
	logger     *zap.Logger
}

func NewServicePartner(container *do.Injector) (*ServicePartner, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[*zap.Logger](container)
	if err != nil {
		return nil, err
	}

	return &ServicePartner{container, postgresDB, logger.Named("partner")}, nil
}

func canAccessPartner(actor *models.User, partner *models.Partner) bool {
	return actor.IsMaster() || partner.ManagerID == actor.ID
}

// ListPartners returns the actor's own partners, or every partner for a master.
func (service *ServicePartner) ListPartners(ctx context.Context, actor *models.User) ([]models.PartnerWithMetrics, error) {
	var partners []models.Partner
	var err error
	if actor.IsMaster() {
		partners, err = datastore.GetAllPartners(ctx, service.postgresDB)
	} else {
		partners, err = datastore.GetPartnersByManagerID(ctx, service.postgresDB, actor.ID)
	}
	if err != nil {
		return nil, storeFailure(service.logger, "list partners", err)
	}

	result := make([]models.PartnerWithMetrics, 0, len(partners))
	for _, partner := range partners {
		metrics, err := datastore.GetPartnerMetrics(ctx, service.postgresDB, partner.ID)
		if err != nil {
			return nil, storeFailure(service.logger, "get partner metrics", err)
		}
		result = append(result, models.PartnerWithMetrics{Partner: partner, Metrics: models.NewMetricsView(metrics)})
	}
	return result, nil
}

// findAccessiblePartner reports a missing partner before checking ownership.
func (service *ServicePartner) findAccessiblePartner(ctx context.Context, actor *models.User, partnerID string) (*models.Partner, error) {
	partner, err := datastore.FindPartnerByID(ctx, service.postgresDB, partnerID)
	if err != nil {
		return nil, storeFailure(service.logger, "find partner", err)
	}
	if partner == nil {
		return nil, errorx.Wrap(ErrPartnerNotFound, errorx.NotExist)
	}
	if !canAccessPartner(actor, partner) {
		return nil, errorx.Wrap(ErrAccessDenied, errorx.Authz)
	}
	return partner, nil
}

func (service *ServicePartner) GetPartner(ctx context.Context, actor *models.User, partnerID string) (*models.PartnerDetails, error) {
	partner, err := service.findAccessiblePartner(ctx, actor, partnerID)
	if err != nil {
		return nil, err
	}

	metrics, err := datastore.GetPartnerMetrics(ctx, service.postgresDB, partner.ID)
	if err != nil {
		return nil, storeFailure(service.logger, "get partner metrics", err)
	}

	interactions, err := datastore.GetInteractionsByPartnerID(ctx, service.postgresDB, partner.ID)
	if err != nil {
		return nil, storeFailure(service.logger, "get interactions by partner", err)
	}

	details := &models.PartnerDetails{
		Partner:      *partner,
		Interactions: make([]models.InteractionView, 0, len(interactions)),
	}
	if metrics != nil {
		view := models.NewMetricsView(metrics)
		details.Metrics = &view
	}
	for i := range interactions {
		details.Interactions = append(details.Interactions, models.NewInteractionView(&interactions[i]))
	}
	return details, nil
}

// CreatePartner stores the partner with a zeroed metrics row. A manager may only name
// themselves as owner; a master may name anyone.
func (service *ServicePartner) CreatePartner(ctx context.Context, actor *models.User, req *models.PartnerCreateRequest) (*models.Partner, error) {
	if !actor.IsMaster() && req.ManagerID != actor.ID {
		return nil, errorx.Wrap(ErrForeignPartner, errorx.Authz)
	}

	manager, err := datastore.FindUserByID(ctx, service.postgresDB, req.ManagerID)
	if err != nil {
		return nil, storeFailure(service.logger, "find manager", err)
	}
	if manager == nil {
		return nil, errorx.Wrap(ErrManagerNotFound, errorx.NotExist)
	}

	now := time.Now().UTC()
	partner := &models.Partner{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Type:           req.Type,
		Classification: req.Classification,
		Relationship:   req.Relationship,
		ManagerID:      req.ManagerID,
		City:           req.City,
		ContactName:    req.ContactName,
		Status:         req.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if partner.Classification == "" {
		partner.Classification = models.ClassificationBronze
	}
	if partner.Relationship == "" {
		partner.Relationship = models.RelationshipCold
	}
	if partner.Status == "" {
		partner.Status = models.PartnerStatusActive
	}

	err = service.postgresDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := datastore.CreatePartner(ctx, tx, partner); err != nil {
			return err
		}
		_, err := datastore.CreatePartnerMetrics(ctx, tx, &models.PartnerMetrics{
			ID:        uuid.NewString(),
			PartnerID: partner.ID,
			ROI:       decimal.Zero,
			UpdatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, storeFailure(service.logger, "create partner", err)
	}

	return partner, nil
}

func (service *ServicePartner) UpdatePartner(ctx context.Context, actor *models.User, partnerID string, req *models.PartnerUpdateRequest) (*models.Partner, error) {
	partner, err := service.findAccessiblePartner(ctx, actor, partnerID)
	if err != nil {
		return nil, err
	}

	if req.ManagerID != nil && *req.ManagerID != partner.ManagerID {
		if !actor.IsMaster() {
			return nil, errorx.Wrap(ErrReassignPartner, errorx.Authz)
		}
		manager, err := datastore.FindUserByID(ctx, service.postgresDB, *req.ManagerID)
		if err != nil {
			return nil, storeFailure(service.logger, "find manager", err)
		}
		if manager == nil {
			return nil, errorx.Wrap(ErrManagerNotFound, errorx.NotExist)
		}
		partner.ManagerID = *req.ManagerID
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Type != nil {
		partner.Type = *req.Type
	}
	if req.Classification != nil {
		partner.Classification = *req.Classification
	}
	if req.Relationship != nil {
		partner.Relationship = *req.Relationship
	}
	if req.City != nil {
		partner.City = *req.City
	}
	if req.ContactName != nil {
		partner.ContactName = *req.ContactName
	}
	if req.Status != nil {
		partner.Status = *req.Status
	}
	partner.UpdatedAt = time.Now().UTC()

	updated, err := datastore.UpdatePartner(ctx, service.postgresDB, partner)
	if err != nil {
		return nil, storeFailure(service.logger, "update partner", err)
	}
	return updated, nil
}

func (service *ServicePartner) DeletePartner(ctx context.Context, actor *models.User, partnerID string) error {
	partner, err := service.findAccessiblePartner(ctx, actor, partnerID)
	if err != nil {
		return err
	}

	if err := datastore.DeletePartner(ctx, service.postgresDB, partner.ID); err != nil {
		return storeFailure(service.logger, "delete partner", err)
	}
	return nil
}

// CheckMetricsAccess resolves the partner whose metrics actor wants to write: a missing
// partner is reported before a missing master role.
func (service *ServicePartner) CheckMetricsAccess(ctx context.Context, actor *models.User, partnerID string) (*models.Partner, error) {
	partner, err := datastore.FindPartnerByID(ctx, service.postgresDB, partnerID)
	if err != nil {
		return nil, storeFailure(service.logger, "find partner", err)
	}
	if partner == nil {
		return nil, errorx.Wrap(ErrPartnerNotFound, errorx.NotExist)
	}
	if !actor.IsMaster() {
		return nil, errorx.Wrap(ErrMasterOnlyMetrics, errorx.Authz)
	}
	return partner, nil
}

// UpdateMetrics overwrites sales, reservations and roi. Masters only.
func (service *ServicePartner) UpdateMetrics(ctx context.Context, actor *models.User, partnerID string, req *models.MetricsUpdateRequest) (*models.PartnerMetrics, error) {
	partner, err := service.CheckMetricsAccess(ctx, actor, partnerID)
	if err != nil {
		return nil, err
	}

	metrics := &models.PartnerMetrics{PartnerID: partner.ID, ROI: decimal.Zero}
	if req.Sales != nil {
		metrics.Sales = *req.Sales
	}
	if req.Reservations != nil {
		metrics.Reservations = *req.Reservations
	}
	if req.ROI != nil {
		metrics.ROI = req.ROI.Round(2)
	}

	stored, err := datastore.UpsertPartnerMetrics(ctx, service.postgresDB, metrics)
	if err != nil {
		return nil, storeFailure(service.logger, "upsert partner metrics", err)
	}
	return stored, nil
}

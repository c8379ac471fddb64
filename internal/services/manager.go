package services

import (
	"context"

	"partnerhub/internal/datastore"
	"partnerhub/internal/models"

	"github.com/samber/do"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

type ServiceManager struct {
	container  *do.Injector
	postgresDB *bun.DB
	logger     *zap.Logger
}

func NewServiceManager(container *do.Injector) (*ServiceManager, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[*zap.Logger](container)
	if err != nil {
		return nil, err
	}

	return &ServiceManager{container, postgresDB, logger.Named("manager")}, nil
}

// ListManagersWithKPIs recomputes every manager's scores from the current rows. Managers
// keep the store's order. The reads are independent, not one snapshot.
func (service *ServiceManager) ListManagersWithKPIs(ctx context.Context) ([]models.ManagerKPIs, error) {
	managers, err := datastore.GetAllManagers(ctx, service.postgresDB)
	if err != nil {
		return nil, storeFailure(service.logger, "get all managers", err)
	}

	result := make([]models.ManagerKPIs, 0, len(managers))
	for _, manager := range managers {
		kpis, err := service.managerKPIs(ctx, manager.ID)
		if err != nil {
			return nil, err
		}

		result = append(result, models.ManagerKPIs{
			ID:     manager.ID,
			Name:   manager.Name,
			Avatar: manager.Avatar,
			Role:   manager.Role,
			KPIs:   kpis,
		})
	}

	return result, nil
}

func (service *ServiceManager) managerKPIs(ctx context.Context, managerID string) (models.KPIs, error) {
	partners, err := datastore.GetPartnersByManagerID(ctx, service.postgresDB, managerID)
	if err != nil {
		return models.KPIs{}, storeFailure(service.logger, "get partners by manager", err)
	}

	metrics := make([]*models.PartnerMetrics, 0, len(partners))
	for _, partner := range partners {
		m, err := datastore.GetPartnerMetrics(ctx, service.postgresDB, partner.ID)
		if err != nil {
			return models.KPIs{}, storeFailure(service.logger, "get partner metrics", err)
		}
		metrics = append(metrics, m)
	}

	interactions, err := datastore.GetInteractionsByManagerID(ctx, service.postgresDB, managerID)
	if err != nil {
		return models.KPIs{}, storeFailure(service.logger, "get interactions by manager", err)
	}

	return ComputeKPIs(metrics, interactions), nil
}

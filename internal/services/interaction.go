package services

import (
	"context"
	"time"

	"partnerhub/internal/datastore"
	"partnerhub/internal/models"

	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

const UNKNOWN_CLIENT_NAME = "Unknown"

type ServiceInteraction struct {
	container  *do.Injector
	postgresDB *bun.DB
	logger     *zap.Logger
}

func NewServiceInteraction(container *do.Injector) (*ServiceInteraction, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[*zap.Logger](container)
	if err != nil {
		return nil, err
	}

	return &ServiceInteraction{container, postgresDB, logger.Named("interaction")}, nil
}

// ListInteractions returns the actor's own interactions, or all of them for a master, each
// labelled with its partner's name.
func (service *ServiceInteraction) ListInteractions(ctx context.Context, actor *models.User) ([]models.InteractionView, error) {
	var interactions []models.Interaction
	var err error
	if actor.IsMaster() {
		interactions, err = datastore.GetAllInteractions(ctx, service.postgresDB)
	} else {
		interactions, err = datastore.GetInteractionsByManagerID(ctx, service.postgresDB, actor.ID)
	}
	if err != nil {
		return nil, storeFailure(service.logger, "list interactions", err)
	}

	names := make(map[string]string)
	result := make([]models.InteractionView, 0, len(interactions))
	for i := range interactions {
		view := models.NewInteractionView(&interactions[i])

		name, ok := names[view.PartnerID]
		if !ok {
			partner, err := datastore.FindPartnerByID(ctx, service.postgresDB, view.PartnerID)
			if err != nil {
				return nil, storeFailure(service.logger, "find partner", err)
			}
			name = UNKNOWN_CLIENT_NAME
			if partner != nil {
				name = partner.Name
			}
			names[view.PartnerID] = name
		}
		view.ClientName = name

		result = append(result, view)
	}
	return result, nil
}

// CreateInteraction logs the interaction and moves the partner's last contact to the
// interaction date, which may be in the past. The acting manager must match managerId
// unless they are a master; managerId is not compared with the partner's owner.
func (service *ServiceInteraction) CreateInteraction(ctx context.Context, actor *models.User, req *models.InteractionCreateRequest) (*models.InteractionView, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, errorx.Wrap(ErrInvalidDate, errorx.Validation)
	}

	if !actor.IsMaster() && req.ManagerID != actor.ID {
		return nil, errorx.Wrap(ErrForeignInteraction, errorx.Authz)
	}

	partner, err := datastore.FindPartnerByID(ctx, service.postgresDB, req.PartnerID)
	if err != nil {
		return nil, storeFailure(service.logger, "find partner", err)
	}
	if partner == nil {
		return nil, errorx.Wrap(ErrPartnerNotFound, errorx.NotExist)
	}

	interaction := &models.Interaction{
		ID:        uuid.NewString(),
		PartnerID: partner.ID,
		ManagerID: req.ManagerID,
		Type:      req.Type,
		Date:      date.UTC(),
		Duration:  req.Duration,
		Quality:   req.Quality,
		Notes:     req.Notes,
		CreatedAt: time.Now().UTC(),
	}

	err = service.postgresDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := datastore.CreateInteraction(ctx, tx, interaction); err != nil {
			return err
		}
		return datastore.TouchPartnerLastContact(ctx, tx, partner.ID, interaction.Date)
	})
	if err != nil {
		return nil, storeFailure(service.logger, "create interaction", err)
	}

	view := models.NewInteractionView(interaction)
	return &view, nil
}

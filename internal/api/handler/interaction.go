package handler

import (
	"net/http"

	"partnerhub/internal/models"
	"partnerhub/internal/pkg/httpx"
	"partnerhub/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupInteraction struct {
	container *do.Injector
}

func (gr *groupInteraction) GetInteractions(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceInteraction, err := do.Invoke[*services.ServiceInteraction](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	interactions, err := serviceInteraction.ListInteractions(ctx, user)
	return httpx.RestAbort(c, interactions, err)
}

func (gr *groupInteraction) CreateInteraction(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req models.InteractionCreateRequest
	if err := bind(c, &req); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceInteraction, err := do.Invoke[*services.ServiceInteraction](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	interaction, err := serviceInteraction.CreateInteraction(ctx, user, &req)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return c.JSON(http.StatusCreated, interaction)
}

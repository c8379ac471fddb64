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

type groupPartner struct {
	container *do.Injector
}

func (gr *groupPartner) service() (*services.ServicePartner, error) {
	servicePartner, err := do.Invoke[*services.ServicePartner](gr.container)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}
	return servicePartner, nil
}

func (gr *groupPartner) GetPartners(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	servicePartner, err := gr.service()
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	partners, err := servicePartner.ListPartners(ctx, user)
	return httpx.RestAbort(c, partners, err)
}

func (gr *groupPartner) CreatePartner(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req models.PartnerCreateRequest
	if err := bind(c, &req); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	servicePartner, err := gr.service()
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	partner, err := servicePartner.CreatePartner(ctx, user, &req)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return c.JSON(http.StatusCreated, partner)
}

func (gr *groupPartner) Show(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	servicePartner, err := gr.service()
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	partner, err := servicePartner.GetPartner(ctx, user, c.Param("id"))
	return httpx.RestAbort(c, partner, err)
}

func (gr *groupPartner) UpdatePartner(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req models.PartnerUpdateRequest
	if err := bind(c, &req); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	servicePartner, err := gr.service()
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	partner, err := servicePartner.UpdatePartner(ctx, user, c.Param("id"), &req)
	return httpx.RestAbort(c, partner, err)
}

func (gr *groupPartner) DeletePartner(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	servicePartner, err := gr.service()
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	if err := servicePartner.DeletePartner(ctx, user, c.Param("id")); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (gr *groupPartner) UpdateMetrics(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	servicePartner, err := gr.service()
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	// existence and role are answered before the body is looked at
	if _, err := servicePartner.CheckMetricsAccess(ctx, user, c.Param("id")); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	var req models.MetricsUpdateRequest
	if err := bind(c, &req); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	metrics, err := servicePartner.UpdateMetrics(ctx, user, c.Param("id"), &req)
	return httpx.RestAbort(c, metrics, err)
}

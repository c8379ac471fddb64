package handler

import (
	"partnerhub/internal/pkg/httpx"
	"partnerhub/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupManager struct {
	container *do.Injector
}

func (gr *groupManager) GetManagers(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := ResolveValidUser(ctx, gr.container); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceManager, err := do.Invoke[*services.ServiceManager](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	managers, err := serviceManager.ListManagersWithKPIs(ctx)
	return httpx.RestAbort(c, managers, err)
}

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

type groupAuth struct {
	container *do.Injector
}

func (gr *groupAuth) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bind(c, &req); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	response, err := serviceUser.Register(c.Request().Context(), &req)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return c.JSON(http.StatusCreated, response)
}

func (gr *groupAuth) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	response, err := serviceUser.Login(c.Request().Context(), &req)
	return httpx.RestAbort(c, response, err)
}

func (gr *groupAuth) Logout(c echo.Context) error {
	session, err := ResolveSession(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	if err := serviceUser.Logout(c.Request().Context(), session); err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]string{"message": "Logged out successfully"}, nil)
}

func (gr *groupAuth) Me(c echo.Context) error {
	user, err := ResolveValidUser(c.Request().Context(), gr.container)
	return httpx.RestAbort(c, user, err)
}

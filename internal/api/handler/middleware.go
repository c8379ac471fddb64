package handler

import (
	"context"
	"errors"
	"strings"

	"partnerhub/internal/models"
	"partnerhub/internal/pkg/httpx"
	"partnerhub/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type ctxKey string

var ctxKeyAuthUser ctxKey = "AUTH_USER"

func Authn(verifier interface {
	Validate(ctx context.Context, token string) (*models.UserFromAuth, error)
},
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			parts := strings.Split(header, "Bearer")
			if len(parts) != 2 {
				return next(c)
			}

			token := strings.TrimSpace(parts[1])
			if len(token) == 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			user, err := verifier.Validate(ctx, token)
			if err != nil {
				// although it's a client error, we don't want to detailed information
				return httpx.Abort(c, errorx.Wrap(errors.New("invalid access token"), errorx.Authn))
			}

			ctx = context.WithValue(ctx, ctxKeyAuthUser, user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func ResolveSession(ctx context.Context) (*models.UserFromAuth, error) {
	userAuth, ok := ctx.Value(ctxKeyAuthUser).(*models.UserFromAuth)
	if !ok {
		return nil, errorx.Wrap(services.ErrMissingSession, errorx.Authn)
	}
	return userAuth, nil
}

func ResolveValidUser(ctx context.Context, container *do.Injector) (*models.User, error) {
	userAuth, err := ResolveSession(ctx)
	if err != nil {
		return nil, err
	}

	serviceUser, err := do.Invoke[*services.ServiceUser](container)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	return serviceUser.FindUserByID(ctx, userAuth.ID)
}

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if msg, ok := he.Message.(string); ok {
				return errorx.Wrap(errors.New(msg), errorx.Invalid)
			}
		}
		return errorx.Wrap(err, errorx.Invalid)
	}
	return c.Validate(req)
}

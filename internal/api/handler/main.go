package handler

import (
	"net/http"

	"partnerhub/internal/config"
	"partnerhub/internal/pkg/httpx"
	"partnerhub/internal/services"

	toolkitHttpx "github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.HideBanner = true
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == config.ModeDebug {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = toolkitHttpx.SegmentJSONSerializer{}
	r.Validator = newRequestValidator()
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	db, err := do.Invoke[*bun.DB](cfg.Container)
	if err != nil {
		return nil, err
	}
	r.GET("/live", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	r.GET("/ready", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, httpx.ErrorResponse{Message: "database unavailable"})
		}
		return c.NoContent(http.StatusOK)
	})

	routesAPI := r.Group("/api")
	{
		authentication, err := do.Invoke[*services.Authentication](cfg.Container)
		if err != nil {
			return nil, err
		}
		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})

		routesAPI.Use(cors)
		routesAPI.Use(Authn(authentication)) // Authn will NOT terminate anonymous requests.

		a := groupAuth{cfg.Container}
		routesAPI.POST("/auth/register", a.Register)
		routesAPI.POST("/auth/login", a.Login)
		routesAPI.POST("/auth/logout", a.Logout)
		routesAPI.GET("/auth/user", a.Me)

		m := groupManager{cfg.Container}
		routesAPI.GET("/managers", m.GetManagers)

		routesAPIPartner := routesAPI.Group("/partners")
		{
			p := groupPartner{cfg.Container}
			routesAPIPartner.GET("", p.GetPartners)
			routesAPIPartner.POST("", p.CreatePartner)
			routesAPIPartner.GET("/:id", p.Show)
			routesAPIPartner.PATCH("/:id", p.UpdatePartner)
			routesAPIPartner.DELETE("/:id", p.DeletePartner)
			routesAPIPartner.PATCH("/:id/metrics", p.UpdateMetrics)
		}

		i := groupInteraction{cfg.Container}
		routesAPI.GET("/interactions", i.GetInteractions)
		routesAPI.POST("/interactions", i.CreateInteraction)
	}

	return r, nil
}

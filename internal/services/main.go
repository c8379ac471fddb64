package services

import (
	"partnerhub/internal/config"

	"github.com/samber/do"
)

// Provide registers every service on the injector. The injector must already hold a
// *config.Config, a *bun.DB, a caching.Cache, Revocations, an interfaces.Limiter and a
// *zap.Logger.
func Provide(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*Authentication, error) {
		cfg, err := do.Invoke[*config.Config](i)
		if err != nil {
			return nil, err
		}

		revocations, err := do.Invoke[Revocations](i)
		if err != nil {
			return nil, err
		}

		return NewAuthentication(cfg.JWTSecret, cfg.JWTTTL, revocations)
	})

	do.Provide(injector, func(i *do.Injector) (*ServiceUser, error) {
		return NewServiceUser(i)
	})

	do.Provide(injector, func(i *do.Injector) (*ServiceManager, error) {
		return NewServiceManager(i)
	})

	do.Provide(injector, func(i *do.Injector) (*ServicePartner, error) {
		return NewServicePartner(i)
	})

	do.Provide(injector, func(i *do.Injector) (*ServiceInteraction, error) {
		return NewServiceInteraction(i)
	})
}

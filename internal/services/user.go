package services

import (
	"context"
	"errors"
	"time"

	"partnerhub/internal/config"
	"partnerhub/internal/datastore"
	"partnerhub/internal/interfaces"
	"partnerhub/internal/models"
	"partnerhub/internal/pkg/caching"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/samber/do"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

type ServiceUser struct {
	container      *do.Injector
	postgresDB     *bun.DB
	cache          caching.Cache
	limiter        interfaces.Limiter
	authentication *Authentication
	logger         *zap.Logger
	loginLimit     redis_rate.Limit
}

func NewServiceUser(container *do.Injector) (*ServiceUser, error) {
	cfg, err := do.Invoke[*config.Config](container)
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	rateLimiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	authentication, err := do.Invoke[*Authentication](container)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[*zap.Logger](container)
	if err != nil {
		return nil, err
	}

	return &ServiceUser{
		container:      container,
		postgresDB:     postgresDB,
		cache:          cache,
		limiter:        rateLimiter,
		authentication: authentication,
		logger:         logger.Named("user"),
		loginLimit:     redis_rate.PerMinute(cfg.LoginRateLimitPerMinute),
	}, nil
}

// Register creates the account and signs it in. The role defaults to manager.
func (service *ServiceUser) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := datastore.FindUserByUsername(ctx, service.postgresDB, req.Username)
	if err != nil {
		return nil, storeFailure(service.logger, "find user by username", err)
	}
	if existing != nil {
		return nil, errorx.Wrap(ErrUsernameTaken, errorx.Invalid)
	}

	hash, err := service.authentication.HashPassword(req.Password)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	role := req.Role
	if role == "" {
		role = models.RoleManager
	}

	user, err := datastore.CreateUser(ctx, service.postgresDB, &models.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Password:  hash,
		Name:      req.Name,
		Role:      role,
		Avatar:    req.Avatar,
		CreatedAt: time.Now().UTC(),
	})
	if datastore.IsUniqueViolation(err) {
		// lost a race with a concurrent registration of the same username
		return nil, errorx.Wrap(ErrUsernameTaken, errorx.Invalid)
	}
	if err != nil {
		return nil, storeFailure(service.logger, "create user", err)
	}

	return service.signIn(user)
}

func (service *ServiceUser) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	err := service.limiter.Allow(ctx, LimitKeyLogin(req.Username), service.loginLimit)
	if errors.Is(err, limiter.ErrRateLimited) {
		return nil, errorx.Wrap(err, errorx.RateLimiting)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	user, err := datastore.FindUserByUsername(ctx, service.postgresDB, req.Username)
	if err != nil {
		return nil, storeFailure(service.logger, "find user by username", err)
	}
	if user == nil || !service.authentication.ComparePassword(user.Password, req.Password) {
		return nil, errorx.Wrap(ErrInvalidCredentials, errorx.Authn)
	}

	return service.signIn(user)
}

func (service *ServiceUser) Logout(ctx context.Context, session *models.UserFromAuth) error {
	if err := service.authentication.Revoke(ctx, session); err != nil {
		return storeFailure(service.logger, "revoke token", err)
	}

	if err := service.cache.Delete(ctx, DBKeyUser(session.ID)); err != nil && !errors.Is(err, caching.ErrCacheMiss) {
		service.logger.Warn("evict user profile", zap.String("user_id", session.ID), zap.Error(err))
	}
	return nil
}

// FindUserByID resolves a session subject. Users have no update path; the cached profile is
// dropped on logout.
func (service *ServiceUser) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	callback := func() (*models.User, error) {
		user, err := datastore.FindUserByID(ctx, service.postgresDB, userID)
		if err != nil {
			return nil, storeFailure(service.logger, "find user by id", err)
		}
		if user == nil {
			return nil, errorx.Wrap(ErrUserNotFound, errorx.Authn)
		}
		return user, nil
	}

	user, err := caching.UseCache(ctx, service.cache, DBKeyUser(userID), CACHE_TTL_5_MINS, callback)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errorx.Wrap(ErrUserNotFound, errorx.Authn)
	}
	return user, nil
}

func (service *ServiceUser) signIn(user *models.User) (*models.LoginResponse, error) {
	token, err := service.authentication.CreateToken(user)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}
	return &models.LoginResponse{Token: token, User: user}, nil
}

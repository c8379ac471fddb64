package services

import (
	"context"
	"sync"
	"testing"

	"partnerhub/internal/interfaces"
	"partnerhub/internal/models"
	"partnerhub/internal/pkg/caching"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefaultsToManager(t *testing.T) {
	ctx := context.Background()
	container, _ := newTestContainer(t, interfaces.NoopLimiter{})
	serviceUser := do.MustInvoke[*ServiceUser](container)

	response, err := serviceUser.Register(ctx, &models.RegisterRequest{
		Username: "paula",
		Password: "secret1",
		Name:     "Paula",
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)
	require.Equal(t, models.RoleManager, response.User.Role)
	require.NotEqual(t, "secret1", response.User.Password)

	_, err = serviceUser.Register(ctx, &models.RegisterRequest{
		Username: "paula",
		Password: "secret2",
		Name:     "Paula Again",
	})
	requireKind(t, err, errorx.Invalid)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterConcurrentSameUsername(t *testing.T) {
	ctx := context.Background()
	container, _ := newTestContainer(t, interfaces.NoopLimiter{})
	serviceUser := do.MustInvoke[*ServiceUser](container)

	const attempts = 6
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = serviceUser.Register(ctx, &models.RegisterRequest{
				Username: "paula",
				Password: "secret1",
				Name:     "Paula",
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		// whether the lookup or the unique index catches it, the caller sees a taken username
		requireKind(t, err, errorx.Invalid)
		require.ErrorIs(t, err, ErrUsernameTaken)
	}
	require.Equal(t, 1, created)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	container, _ := newTestContainer(t, interfaces.NoopLimiter{})
	serviceUser := do.MustInvoke[*ServiceUser](container)

	_, err := serviceUser.Register(ctx, &models.RegisterRequest{
		Username: "paula",
		Password: "secret1",
		Name:     "Paula",
	})
	require.NoError(t, err)

	response, err := serviceUser.Login(ctx, &models.LoginRequest{Username: "paula", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "paula", response.User.Username)

	authentication := do.MustInvoke[*Authentication](container)
	session, err := authentication.Validate(ctx, response.Token)
	require.NoError(t, err)
	require.Equal(t, response.User.ID, session.ID)

	_, err = serviceUser.Login(ctx, &models.LoginRequest{Username: "paula", Password: "wrong"})
	requireKind(t, err, errorx.Authn)

	_, err = serviceUser.Login(ctx, &models.LoginRequest{Username: "nobody", Password: "secret1"})
	requireKind(t, err, errorx.Authn)
}

func TestLoginRateLimited(t *testing.T) {
	container, _ := newTestContainer(t, denyLimiter{})
	serviceUser := do.MustInvoke[*ServiceUser](container)

	_, err := serviceUser.Login(context.Background(), &models.LoginRequest{Username: "paula", Password: "secret1"})
	requireKind(t, err, errorx.RateLimiting)
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	container, _ := newTestContainer(t, interfaces.NoopLimiter{})
	serviceUser := do.MustInvoke[*ServiceUser](container)
	authentication := do.MustInvoke[*Authentication](container)

	response, err := serviceUser.Register(ctx, &models.RegisterRequest{
		Username: "paula",
		Password: "secret1",
		Name:     "Paula",
	})
	require.NoError(t, err)

	session, err := authentication.Validate(ctx, response.Token)
	require.NoError(t, err)

	cache := do.MustInvoke[caching.Cache](container)
	_, err = serviceUser.FindUserByID(ctx, session.ID)
	require.NoError(t, err)
	require.True(t, cache.Exists(ctx, DBKeyUser(session.ID)))

	require.NoError(t, serviceUser.Logout(ctx, session))

	_, err = authentication.Validate(ctx, response.Token)
	require.ErrorIs(t, err, ErrSessionRevoked)
	// the profile is evicted with the session
	require.False(t, cache.Exists(ctx, DBKeyUser(session.ID)))
}

func TestFindUserByID(t *testing.T) {
	ctx := context.Background()
	container, _ := newTestContainer(t, interfaces.NoopLimiter{})
	serviceUser := do.MustInvoke[*ServiceUser](container)

	response, err := serviceUser.Register(ctx, &models.RegisterRequest{
		Username: "paula",
		Password: "secret1",
		Name:     "Paula",
		Role:     models.RoleMaster,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		user, err := serviceUser.FindUserByID(ctx, response.User.ID)
		require.NoError(t, err)
		require.Equal(t, "paula", user.Username)
		require.True(t, user.IsMaster())
	}

	_, err = serviceUser.FindUserByID(ctx, "missing")
	requireKind(t, err, errorx.Authn)
}

package caching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type profile struct {
	ID   string
	Name string
}

func TestCacheLocal(t *testing.T) {
	ctx := context.Background()
	cash := NewCacheLocal(100, time.Minute)

	var target profile
	require.ErrorIs(t, cash.Get(ctx, "user:1", &target), ErrCacheMiss)
	require.False(t, cash.Exists(ctx, "user:1"))

	require.NoError(t, cash.Set(ctx, "user:1", profile{"1", "Roberto"}, time.Minute))
	require.True(t, cash.Exists(ctx, "user:1"))
	require.NoError(t, cash.Get(ctx, "user:1", &target))
	require.Equal(t, "Roberto", target.Name)

	require.NoError(t, cash.Delete(ctx, "user:1"))
	require.False(t, cash.Exists(ctx, "user:1"))
}

func TestUseCache(t *testing.T) {
	ctx := context.Background()
	cash := NewCacheLocal(100, time.Minute)

	calls := 0
	load := func() (*profile, error) {
		calls++
		return &profile{"1", "Fernanda"}, nil
	}

	for i := 0; i < 3; i++ {
		v, err := UseCache(ctx, cash, "user:1", time.Minute, load)
		require.NoError(t, err)
		require.Equal(t, "Fernanda", v.Name)
	}
	require.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err := UseCache(ctx, cash, "user:2", time.Minute, func() (*profile, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	require.False(t, cash.Exists(ctx, "user:2"))
}

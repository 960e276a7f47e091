package cache

import (
	"context"
	"testing"

	"teslastats/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "teslastats:stats:monthly:Europe", Key("monthly", "Europe"))
	assert.Equal(t, "teslastats:stats:", Key())
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var got map[string]int
	hit, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, m.Set(ctx, "k", map[string]int{"a": 1}))
	hit, err = m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, map[string]int{"a": 1}, got)

	require.NoError(t, m.Invalidate(ctx))
	assert.Equal(t, 0, m.Len())
}

func TestInit_DisabledWithoutAddr(t *testing.T) {
	SetDefault(NewMemory())
	defer SetDefault(nil)

	Init(&config.RedisConfig{})
	_, ok := Default().(Noop)
	assert.True(t, ok)

	hit, err := Default().Get(context.Background(), "k", new(int))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestSetDefault_Nil(t *testing.T) {
	SetDefault(nil)
	_, ok := Default().(Noop)
	assert.True(t, ok)
}

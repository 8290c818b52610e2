package ban

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_BansAfterMaxStrikes(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(Policy{MaxStrikes: 3, BanDuration: time.Minute})
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for want := 1; want <= 2; want++ {
		n, err := s.Strike(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	banned, _ := s.Banned(ctx, "10.0.0.1")
	assert.False(t, banned)

	n, err := s.Strike(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	banned, _ = s.Banned(ctx, "10.0.0.1")
	assert.True(t, banned)
	other, _ := s.Banned(ctx, "10.0.0.2")
	assert.False(t, other)

	now = now.Add(2 * time.Minute)
	banned, _ = s.Banned(ctx, "10.0.0.1")
	assert.False(t, banned)
}

func TestMemoryStore_ForgiveResetsStrikes(t *testing.T) {
	s := NewMemoryStore(Policy{MaxStrikes: 2, BanDuration: time.Minute})
	ctx := context.Background()

	_, _ = s.Strike(ctx, "ip")
	require.NoError(t, s.Forgive(ctx, "ip"))

	n, err := s.Strike(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	banned, _ := s.Banned(ctx, "ip")
	assert.False(t, banned)
}

func TestMemoryStore_Purge(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(Policy{MaxStrikes: 5, BanDuration: time.Minute})
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = s.Strike(ctx, "a")
	_, _ = s.Strike(ctx, "b")
	assert.Equal(t, 0, s.Purge())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, s.Purge())
}

func TestPolicyDefaults(t *testing.T) {
	p := Policy{}.withDefaults()
	assert.Equal(t, 5, p.MaxStrikes)
	assert.Equal(t, 15*time.Minute, p.BanDuration)
}

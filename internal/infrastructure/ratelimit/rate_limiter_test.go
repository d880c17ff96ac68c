package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(Policy{Rate: rate.Every(time.Minute), Burst: 3})
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow("1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := rl.Allow("1.2.3.4")
	assert.False(t, ok)

	ok, _ = rl.Allow("5.6.7.8")
	assert.True(t, ok, "keys have independent buckets")

	now = now.Add(time.Minute)
	ok, _ = rl.Allow("1.2.3.4")
	assert.True(t, ok, "bucket refills over time")
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(GeneralPolicy)
	rl.now = func() time.Time { return now }

	_, _ = rl.Allow("a")
	now = now.Add(30 * time.Minute)
	_, _ = rl.Allow("b")
	now = now.Add(45 * time.Minute)

	rl.Cleanup()
	assert.Equal(t, 1, rl.Size())
}

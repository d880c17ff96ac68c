package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Policy describes a token bucket: Burst requests at once, refilled at Rate per second.
type Policy struct {
	Rate  rate.Limit
	Burst int
}

var (
	// StrictPolicy guards credential and anonymous write endpoints.
	StrictPolicy = Policy{Rate: rate.Every(6 * time.Second), Burst: 10}
	// GeneralPolicy applies to everything else.
	GeneralPolicy = Policy{Rate: rate.Limit(20), Burst: 60}
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one bucket per client key. It satisfies echo's
// middleware.RateLimiterStore.
type RateLimiter struct {
	policy   Policy
	idleTTL  time.Duration
	visitors map[string]*visitor
	mutex    sync.Mutex
	now      func() time.Time
}

func NewRateLimiter(policy Policy) *RateLimiter {
	return &RateLimiter{
		policy:   policy,
		idleTTL:  time.Hour,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Allow consumes one token for the key if available.
func (rl *RateLimiter) Allow(key string) (bool, error) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.policy.Rate, rl.policy.Burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1), nil
}

// Cleanup removes buckets that have been idle longer than the TTL.
func (rl *RateLimiter) Cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
}

func (rl *RateLimiter) Size() int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return len(rl.visitors)
}

// StartCleanupRoutine runs Cleanup periodically until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}

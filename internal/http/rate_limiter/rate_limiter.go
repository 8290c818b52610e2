package rate_limiter

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const idleVisitorTTL = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors hands out one token-bucket limiter per client IP.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
}

func NewVisitors(rps float64, burst int) *Visitors {
	if burst <= 0 {
		burst = 1
	}
	return &Visitors{
		visitors: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether ip may perform one more request now.
func (v *Visitors) Allow(ip string) bool {
	return v.get(ip).Allow()
}

func (v *Visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	c, exists := v.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(v.rps, v.burst)
		v.visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// Cleanup drops limiters idle for longer than the visitor TTL.
func (v *Visitors) Cleanup() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	for ip, c := range v.visitors {
		if time.Since(c.lastSeen) > idleVisitorTTL {
			delete(v.visitors, ip)
			removed++
		}
	}
	return removed
}

// Reset forgets every visitor.
func (v *Visitors) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visitors = make(map[string]*clientLimiter)
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// StartVisitorCleanupLoop calls Cleanup every interval until ctx is done.
func StartVisitorCleanupLoop(ctx context.Context, v *Visitors, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := v.Cleanup(); n > 0 {
				log.Debug().Int("removed", n).Msg("idle rate limit visitors removed")
			}
		}
	}
}

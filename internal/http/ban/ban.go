// Package ban blocks clients that keep failing to log in.
package ban

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Store counts failed login attempts per client and bans clients that reach
// the strike limit.
type Store interface {
	// Banned reports whether target is currently banned.
	Banned(ctx context.Context, target string) (bool, error)
	// Strike records a failure and returns the strike count in the window.
	// Reaching the limit bans target and clears its strikes.
	Strike(ctx context.Context, target string) (int, error)
	// Forgive clears the strikes of target after a successful login.
	Forgive(ctx context.Context, target string) error
}

// Policy holds the strike limit, the strike window and the ban duration.
type Policy struct {
	MaxStrikes  int
	BanDuration time.Duration
}

func (p Policy) withDefaults() Policy {
	if p.MaxStrikes <= 0 {
		p.MaxStrikes = 5
	}
	if p.BanDuration <= 0 {
		p.BanDuration = 15 * time.Minute
	}
	return p
}

const (
	strikeKeyPrefix = "login:strikes:"
	banKeyPrefix    = "login:ban:"
)

// RedisStore keeps strikes and bans in Redis so they are shared across
// instances and expire on their own.
type RedisStore struct {
	rdb    *redis.Client
	policy Policy
}

func NewRedisStore(rdb *redis.Client, policy Policy) *RedisStore {
	return &RedisStore{rdb: rdb, policy: policy.withDefaults()}
}

func (s *RedisStore) Banned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		return false, fmt.Errorf("check ban: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Strike(ctx context.Context, target string) (int, error) {
	key := strikeKeyPrefix + target

	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("record strike: %w", err)
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, key, s.policy.BanDuration).Err(); err != nil {
			return 0, fmt.Errorf("expire strikes: %w", err)
		}
	}

	strikes := int(n)
	if strikes >= s.policy.MaxStrikes {
		pipe := s.rdb.TxPipeline()
		pipe.Set(ctx, banKeyPrefix+target, strikes, s.policy.BanDuration)
		pipe.Del(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			return strikes, fmt.Errorf("ban target: %w", err)
		}
	}
	return strikes, nil
}

func (s *RedisStore) Forgive(ctx context.Context, target string) error {
	return s.rdb.Del(ctx, strikeKeyPrefix+target).Err()
}

type memoryEntry struct {
	strikes     int
	windowEnd   time.Time
	bannedUntil time.Time
}

// MemoryStore is the single-process Store used when no Redis is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	policy  Policy
	now     func() time.Time
}

func NewMemoryStore(policy Policy) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		policy:  policy.withDefaults(),
		now:     time.Now,
	}
}

func (s *MemoryStore) Banned(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[target]
	return ok && s.now().Before(e.bannedUntil), nil
}

func (s *MemoryStore) Strike(_ context.Context, target string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[target]
	if !ok {
		e = &memoryEntry{}
		s.entries[target] = e
	}
	if now.After(e.windowEnd) {
		e.strikes = 0
		e.windowEnd = now.Add(s.policy.BanDuration)
	}

	e.strikes++
	strikes := e.strikes
	if strikes >= s.policy.MaxStrikes {
		e.bannedUntil = now.Add(s.policy.BanDuration)
		e.strikes = 0
	}
	return strikes, nil
}

func (s *MemoryStore) Forgive(_ context.Context, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[target]; ok {
		e.strikes = 0
	}
	return nil
}

// Purge drops entries whose window and ban have both elapsed.
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for target, e := range s.entries {
		if now.After(e.windowEnd) && now.After(e.bannedUntil) {
			delete(s.entries, target)
			purged++
		}
	}
	return purged
}

// StartPurgeLoop purges expired entries from store every interval until ctx
// is done.
func StartPurgeLoop(ctx context.Context, store *MemoryStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Purge(); n > 0 {
				log.Debug().Int("purged", n).Msg("expired login bans purged")
			}
		}
	}
}

// Package ratelimit throttles abusive clients on the auth endpoints with a
// per-key token bucket. Decision counters can optionally be recorded in
// Redis for inspection.
package ratelimit

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LimiterStore hands out a limiter per client key (an IP here).
type LimiterStore interface {
	Get(key string) *rate.Limiter
}

// Event is one allow/deny decision.
type Event struct {
	Key     string
	Allowed bool
	Path    string
	At      time.Time
}

// StatsStore persists decision events. Recording is best-effort; errors
// never fail the request.
type StatsStore interface {
	Record(ctx context.Context, ev Event) error
}

// MemoryStore keeps one token bucket per key with periodic idle cleanup.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewMemoryStore(rps float64, burst int) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

func (s *MemoryStore) Get(key string) *rate.Limiter {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.lastSeen = now
		return e.lim
	}

	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &entry{lim: lim, lastSeen: now}
	return lim
}

func (s *MemoryStore) cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor drops idle buckets every few minutes until ctx is done.
func (s *MemoryStore) StartJanitor(ctx context.Context) {
	t := time.NewTicker(2 * time.Minute)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.cleanup()
			}
		}
	}()
}

// Middleware rejects over-limit clients with 429 and a Retry-After hint.
// stats may be nil.
func Middleware(store LimiterStore, stats StatsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed := store.Get(key).Allow()

		if stats != nil {
			_ = stats.Record(c.Request.Context(), Event{
				Key:     key,
				Allowed: allowed,
				Path:    c.FullPath(),
				At:      time.Now(),
			})
		}

		if !allowed {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}
		c.Next()
	}
}

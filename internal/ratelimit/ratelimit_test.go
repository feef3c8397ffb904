package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SameKeySameLimiter(t *testing.T) {
	s := NewMemoryStore(1, 1)

	a := s.Get("10.0.0.1")
	b := s.Get("10.0.0.1")
	c := s.Get("10.0.0.2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestMemoryStore_BurstExhaustion(t *testing.T) {
	s := NewMemoryStore(0.001, 3)
	lim := s.Get("10.0.0.1")

	for i := 0; i < 3; i++ {
		assert.True(t, lim.Allow(), "request %d within burst", i)
	}
	assert.False(t, lim.Allow())
}

func TestMemoryStore_CleanupDropsIdleEntries(t *testing.T) {
	s := NewMemoryStore(1, 1)
	s.idleTTL = time.Millisecond

	s.Get("10.0.0.1")
	time.Sleep(5 * time.Millisecond)
	s.Get("10.0.0.2")
	s.cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.NotContains(t, s.entries, "10.0.0.1")
	assert.Contains(t, s.entries, "10.0.0.2")
}

type recordedStats struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordedStats) Record(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func TestMiddleware_RejectsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stats := &recordedStats{}
	r := gin.New()
	r.POST("/api/auth/login", Middleware(NewMemoryStore(0.001, 2), stats), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")

	require.Len(t, stats.events, 3)
	assert.True(t, stats.events[0].Allowed)
	assert.False(t, stats.events[2].Allowed)
	assert.Equal(t, "/api/auth/login", stats.events[2].Path)
}

func TestMiddleware_NilStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/x", Middleware(NewMemoryStore(1, 1), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/metrics"
)

const (
	limiterTTL      = 15 * time.Minute
	cleanupInterval = 5 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore keeps one token bucket per client key.
type limiterStore struct {
	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	every       rate.Limit
	burst       int
	lastCleanup time.Time
	now         func() time.Time
}

func newLimiterStore(perMinute, burst int) *limiterStore {
	if burst <= 0 {
		burst = 1
	}
	return &limiterStore{
		limiters:    make(map[string]*limiterEntry),
		every:       rate.Every(time.Minute / time.Duration(perMinute)),
		burst:       burst,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (s *limiterStore) limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastCleanup) > cleanupInterval {
		for k, entry := range s.limiters {
			if now.Sub(entry.lastSeen) > limiterTTL {
				delete(s.limiters, k)
			}
		}
		s.lastCleanup = now
	}

	if entry, ok := s.limiters[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	l := rate.NewLimiter(s.every, s.burst)
	s.limiters[key] = &limiterEntry{limiter: l, lastSeen: now}
	return l
}

func (s *limiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// LoginRateLimit throttles requests per client IP with a token bucket
// refilled perMinute times a minute. A non-positive rate disables it.
func LoginRateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	store := newLimiterStore(perMinute, burst)
	retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(perMinute))))

	return func(c *gin.Context) {
		if !store.limiter(c.ClientIP()).Allow() {
			metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
			c.Header("Retry-After", retryAfter)
			response.Abort(c, domainerrors.TooManyRequests("Too many login attempts, try again later"))
			return
		}
		c.Next()
	}
}

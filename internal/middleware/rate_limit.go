package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"print-kiosk-backend/internal/models"
)

// maxTrackedClients bounds the per-IP bucket cache; the least recently seen
// client is evicted first and starts again with a full bucket.
const maxTrackedClients = 10000

// TokenBucket is a token bucket refilled continuously at refillRate tokens
// per second up to capacity.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64, now time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now,
	}
}

// Allow takes one token if available.
func (tb *TokenBucket) Allow(now time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	if elapsed := now.Sub(tb.lastRefill).Seconds(); elapsed > 0 {
		tb.tokens += elapsed * tb.refillRate
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// IPRateLimiter keeps one TokenBucket per client IP.
type IPRateLimiter struct {
	perMinute int
	buckets   *lru.Cache[string, *TokenBucket]
	mu        sync.Mutex
	now       func() time.Time
}

// NewIPRateLimiter allows perMinute requests per client IP, with bursts up
// to the same amount.
func NewIPRateLimiter(perMinute int) *IPRateLimiter {
	buckets, err := lru.New[string, *TokenBucket](maxTrackedClients)
	if err != nil {
		panic(err)
	}
	return &IPRateLimiter{
		perMinute: perMinute,
		buckets:   buckets,
		now:       time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	bucket, ok := l.buckets.Get(ip)
	if !ok {
		bucket = NewTokenBucket(l.perMinute, float64(l.perMinute)/60, now)
		l.buckets.Add(ip, bucket)
	}
	l.mu.Unlock()

	return bucket.Allow(now)
}

// RateLimitMiddleware rejects requests over the client's budget with 429. A
// nil limiter lets every request through.
func RateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
			Success: false,
			Error:   "Too many requests, please try again later",
		})
	}
}

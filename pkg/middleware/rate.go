// Package middleware provides HTTP middleware for the CRM server.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/crm/pkg/cache"
)

// bucket tracks a fixed-window request count for one IP.
// Used when Redis is unavailable.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

var (
	bucketsMu sync.Mutex
	buckets   = map[string]*bucket{}
)

func init() {
	// Evict buckets whose window has expired, once a minute.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			bucketsMu.Lock()
			for ip, b := range buckets {
				b.mu.Lock()
				expired := now.After(b.resetAt)
				b.mu.Unlock()
				if expired {
					delete(buckets, ip)
				}
			}
			bucketsMu.Unlock()
		}
	}()
}

func getBucket(ip string) *bucket {
	bucketsMu.Lock()
	defer bucketsMu.Unlock()

	if b, ok := buckets[ip]; ok {
		return b
	}

	b := &bucket{resetAt: time.Now().Add(time.Minute)}
	buckets[ip] = b
	return b
}

// allowRedis counts the request against a fixed Redis window shared by every
// server instance. The key is crm:rate:<ip>:<window-start>.
// Returns (allowed, true) when Redis answered, or (false, false) to signal
// the caller should fall back to the in-memory buckets.
func allowRedis(rdb *redis.Client, ip string, max int, window time.Duration) (bool, bool) {
	windowStart := time.Now().Truncate(window).Unix()
	key := "crm:rate:" + ip + ":" + strconv.FormatInt(windowStart, 10)

	pipe := rdb.Pipeline()
	incr := pipe.Incr(cache.Ctx, key)
	pipe.Expire(cache.Ctx, key, window)
	if _, err := pipe.Exec(cache.Ctx); err != nil {
		return false, false
	}

	return incr.Val() <= int64(max), true
}

// RateLimit returns a middleware that limits each IP to max requests per
// window. Counts live in Redis when available so limits hold across
// instances; otherwise per-process in-memory buckets are used.
// Example: middleware.RateLimit(100, time.Minute)
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			allowed, viaRedis := false, false
			if cache.RDB != nil {
				allowed, viaRedis = allowRedis(cache.RDB, ip, max, window)
			}
			if !viaRedis {
				allowed = getBucket(ip).allow(max, window)
			}

			if !allowed {
				http.Error(w, `{"status":429,"message":"Too Many Requests"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

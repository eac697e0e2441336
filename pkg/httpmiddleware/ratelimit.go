package httpmiddleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimitConfig configures the per-client request limit.
type RateLimitConfig struct {
	// Max requests per Window.
	Max int
	// Window length of the sliding window.
	Window time.Duration
	// Key identifies the client. Defaults to ClientIP.
	Key func(*http.Request) string
}

// counter holds the request counts of the current and the previous window.
type counter struct {
	start time.Time
	curr  float64
	prev  float64
}

type limiter struct {
	max    int
	window time.Duration
	key    func(*http.Request) string
	now    func() time.Time

	mu       sync.Mutex
	counters map[string]*counter
}

func newLimiter(cfg RateLimitConfig) *limiter {
	l := &limiter{
		max:      cfg.Max,
		window:   cfg.Window,
		key:      cfg.Key,
		now:      time.Now,
		counters: make(map[string]*counter),
	}
	if l.key == nil {
		l.key = ClientIP
	}
	if l.window <= 0 {
		l.window = time.Minute
	}
	return l
}

// take records a request for key and reports whether it fits the limit. The
// previous window is weighted by how much of it still overlaps the sliding
// window.
func (l *limiter) take(key string, now time.Time) (remaining int, reset time.Time, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := now.Truncate(l.window)
	c, found := l.counters[key]
	switch {
	case !found:
		c = &counter{start: start}
		l.counters[key] = c
	case start.Sub(c.start) >= 2*l.window:
		c.start, c.prev, c.curr = start, 0, 0
	case start.After(c.start):
		c.start, c.prev, c.curr = start, c.curr, 0
	}

	overlap := 1 - float64(now.Sub(c.start))/float64(l.window)
	used := c.prev*overlap + c.curr
	reset = c.start.Add(l.window)
	if used >= float64(l.max) {
		return 0, reset, false
	}
	c.curr++
	return max(0, int(float64(l.max)-used-1)), reset, true
}

// sweep drops counters untouched for two windows.
func (l *limiter) sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for key, c := range l.counters {
		if now.Sub(c.start) >= 2*l.window {
			delete(l.counters, key)
			n++
		}
	}
	return n
}

func (l *limiter) runSweeper(ctx context.Context) {
	ticker := time.NewTicker(2 * l.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

// RateLimit limits requests per client without evicting idle clients.
func RateLimit(cfg RateLimitConfig) Middleware {
	return newLimiter(cfg).middleware
}

// RateLimitWithCleanup is RateLimit plus a sweeper that forgets idle clients
// until ctx is done.
func RateLimitWithCleanup(ctx context.Context, cfg RateLimitConfig) Middleware {
	l := newLimiter(cfg)
	go l.runSweeper(ctx)
	return l.middleware
}

func (l *limiter) middleware(next http.Handler) http.Handler {
	limit := strconv.Itoa(l.max)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := l.now()
		remaining, reset, ok := l.take(l.key(r), now)

		h := w.Header()
		h.Set("X-RateLimit-Limit", limit)
		h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
		if !ok {
			wait := max(0, reset.Sub(now))
			h.Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP keys requests by the first X-Forwarded-For hop, X-Real-IP or the
// remote address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package core

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleEviction = time.Hour

// ClientRateLimiter throttles requests per remote address. Used on the
// login endpoint to slow down credential guessing.
type ClientRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewClientRateLimiter(limit rate.Limit, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *ClientRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientKey(r)) {
			WriteResponse(w, r, http.StatusTooManyRequests, ErrorBody{Error: "too many requests"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *ClientRateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	client, ok := l.limiters[key]
	if !ok {
		l.evictIdle(now)
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = client
	}

	client.lastSeen = now
	return client.limiter.Allow()
}

func (l *ClientRateLimiter) evictIdle(now time.Time) {
	for key, client := range l.limiters {
		if now.Sub(client.lastSeen) > limiterIdleEviction {
			delete(l.limiters, key)
		}
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

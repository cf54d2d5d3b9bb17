//go:build !js
// +build !js

package main

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// client tracks one caller's token bucket.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter rate limits requests per remote address.
type ClientLimiter struct {
	every   rate.Limit
	burst   int
	idle    time.Duration
	clients map[string]*client
	mu      sync.Mutex
	now     func() time.Time

	// TrustProxy keys clients by the first X-Forwarded-For entry. Only set
	// it behind a proxy that overwrites the header; otherwise any caller can
	// pick a fresh bucket per request.
	TrustProxy bool
}

// NewClientLimiter allows each client one request per interval with burst.
// Clients idle for longer than idle are forgotten by Sweep.
func NewClientLimiter(interval time.Duration, burst int, idle time.Duration) *ClientLimiter {
	return &ClientLimiter{
		every:   rate.Every(interval),
		burst:   burst,
		idle:    idle,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

// Allow reports whether key may make a request now.
func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Sweep forgets idle clients and returns how many were removed.
func (l *ClientLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	now := l.now()
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idle {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until stop is closed.
func (l *ClientLimiter) Run(every time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-stop:
			return
		}
	}
}

// Middleware answers 429 once a client exceeds its rate.
func (l *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientKey(r, l.TrustProxy)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by its remote host, or by the first
// forwarded address when the proxy is trusted.
func clientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0]); fwd != "" {
			return fwd
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

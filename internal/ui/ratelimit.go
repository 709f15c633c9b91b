package ui

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// loginLimiter rate-limits login attempts per client IP. Entries idle
// longer than the cleanup window are dropped to bound memory.
type loginLimiter struct {
	perMinute int
	mu        sync.Mutex
	visitors  map[string]*visitor
	stopCh    chan struct{}
}

type visitor struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func newLoginLimiter(perMinute int) *loginLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	l := &loginLimiter{
		perMinute: perMinute,
		visitors:  make(map[string]*visitor),
		stopCh:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether another login attempt from ip is permitted.
func (l *loginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute)}
		l.visitors[ip] = v
	}
	v.lastAccess = time.Now()
	return v.limiter.Allow()
}

// Stop terminates the cleanup goroutine.
func (l *loginLimiter) Stop() {
	close(l.stopCh)
}

func (l *loginLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			l.mu.Lock()
			for ip, v := range l.visitors {
				if v.lastAccess.Before(cutoff) {
					delete(l.visitors, ip)
				}
			}
			l.mu.Unlock()
		case <-l.stopCh:
			return
		}
	}
}

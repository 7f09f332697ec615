package auth

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/eladmint/whatsapp-analyzer/pkg/utils"
)

// LimiterPool keeps one token bucket per caller key.
type LimiterPool struct {
	mu    sync.Mutex
	m     map[string]*rate.Limiter
	rps   float64
	burst int
}

// NewLimiterPool builds a pool; non-positive values fall back to 5 rps /
// burst 10.
func NewLimiterPool(rps float64, burst int) *LimiterPool {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &LimiterPool{m: make(map[string]*rate.Limiter), rps: rps, burst: burst}
}

func (p *LimiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.m[key]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(p.rps), p.burst)
	p.m[key] = l
	return l
}

// Allow reports whether the caller key may proceed.
func (p *LimiterPool) Allow(key string) bool {
	return p.get(key).Allow()
}

// Limit wraps a handler with per-remote-address rate limiting. Signed
// requests are bucketed by identity instead, so one noisy client cannot
// starve an address shared behind NAT.
func (p *LimiterPool) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := IdentityFromContext(r.Context())
		if key == "" {
			key = r.RemoteAddr
		}
		if !p.Allow(key) {
			utils.JSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

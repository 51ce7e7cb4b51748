package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"museum-concierge/pkg/utils"

	"golang.org/x/time/rate"
)

type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newRateLimiterStore() *rateLimiterStore {
	return &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
	}
}

func (s *rateLimiterStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[key]
	if !ok {
		// a chat turn every ~500ms sustained, short bursts allowed
		limiter = rate.NewLimiter(rate.Every(time.Minute/120), 10)
		s.limiters[key] = limiter
	}
	return limiter
}

// RateLimit throttles chat traffic per client address.
func RateLimit() func(http.Handler) http.Handler {
	store := newRateLimiterStore()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !store.getLimiter(host).Allow() {
				utils.ResponseTooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

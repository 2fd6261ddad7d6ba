package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// TrafficConfig bounds inbound load. Zero values disable the
// corresponding gate.
type TrafficConfig struct {
	RateLimitRPS       float64
	RateLimitBurst     int
	MaxConcurrent      int
	ConcurrencyTimeout time.Duration
}

func trafficControlMiddleware(next http.Handler, cfg TrafficConfig) http.Handler {
	handler := next
	if cfg.MaxConcurrent > 0 {
		timeout := cfg.ConcurrencyTimeout
		if timeout <= 0 {
			timeout = 100 * time.Millisecond
		}
		handler = backpressureMiddleware(handler, cfg.MaxConcurrent, timeout)
	}
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		handler = rateLimitMiddleware(handler, rate.Limit(cfg.RateLimitRPS), burst)
	}
	return handler
}

func rateLimitMiddleware(next http.Handler, limit rate.Limit, burst int) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			reservation := limiter.Reserve()
			wait := reservation.Delay()
			reservation.Cancel()

			seconds := int(wait.Round(time.Second).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// backpressureMiddleware caps in-flight requests. A request that cannot
// claim a slot within acquireTimeout is rejected with 503 so clients
// retry instead of piling up.
func backpressureMiddleware(next http.Handler, maxConcurrent int, acquireTimeout time.Duration) http.Handler {
	slots := make(chan struct{}, maxConcurrent)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := time.NewTimer(acquireTimeout)
		defer timer.Stop()

		select {
		case slots <- struct{}{}:
			defer func() { <-slots }()
			next.ServeHTTP(w, r)
		case <-timer.C:
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "server overloaded, try again later"})
		case <-r.Context().Done():
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "request cancelled while queued"})
		}
	})
}

package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"studio/shared/cache"
	"studio/shared/constant"
	"studio/transport/http/response"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	defaultThrottleBurst   = 5
	defaultThrottleClients = 10000
	throttleSweepInterval  = time.Minute
)

// RateLimit counts requests per client in a fixed Redis window. A cache outage lets the
// request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := constant.CacheKeyRateLimit + clientIP(r) + ":" + userAgent(r)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			if err != nil {
				if !errors.Is(err, cache.Nil) {
					log.Warn().Err(err).Msg("rate limiter cache unavailable")
					next.ServeHTTP(w, r)

					return
				}

				count = 1
			} else {
				count++
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				log.Warn().Err(err).Msg("rate limiter cache unavailable")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// LoginThrottle applies an in-process token bucket per client address to login attempts.
func (a *appMiddleware) LoginThrottle() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if a.config.App.LoginThrottle.RPS <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			ip := clientIP(r)

			if !a.limiter(ip, time.Now()).Allow() {
				log.Warn().Str("ip", ip).Msg("login attempts throttled")
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RealIP rewrites the client address from proxy headers when the proxy is trusted and
// leaves the connection address alone otherwise.
func (a *appMiddleware) RealIP(next http.Handler) http.Handler {
	if !a.config.App.TrustProxy {
		return next
	}

	return chiMiddleware.RealIP(next)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiters holds at most MaxClients buckets. Buckets idle long enough to have
// refilled are dropped, and new clients share one overflow bucket while the map is full.
type loginLimiters struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	overflow  *rate.Limiter
	lastSweep time.Time
}

func (a *appMiddleware) limiter(key string, now time.Time) *rate.Limiter {
	t := &a.throttle

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.clients == nil {
		t.clients = map[string]*clientLimiter{}
	}

	if c, ok := t.clients[key]; ok {
		c.lastSeen = now

		return c.limiter
	}

	maxClients := a.config.App.LoginThrottle.MaxClients
	if maxClients <= 0 {
		maxClients = defaultThrottleClients
	}

	if len(t.clients) >= maxClients || now.Sub(t.lastSweep) >= throttleSweepInterval {
		refilled := now.Add(-a.refillTime())

		for k, c := range t.clients {
			if c.lastSeen.Before(refilled) {
				delete(t.clients, k)
			}
		}

		t.lastSweep = now
	}

	if len(t.clients) >= maxClients {
		if t.overflow == nil {
			t.overflow = a.newLimiter()
		}

		return t.overflow
	}

	lim := a.newLimiter()
	t.clients[key] = &clientLimiter{limiter: lim, lastSeen: now}

	return lim
}

func (a *appMiddleware) newLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(a.config.App.LoginThrottle.RPS), a.burst())
}

func (a *appMiddleware) burst() int {
	if burst := a.config.App.LoginThrottle.Burst; burst > 0 {
		return burst
	}

	return defaultThrottleBurst
}

// refillTime is how long an untouched bucket takes to fill up again.
func (a *appMiddleware) refillTime() time.Duration {
	return time.Duration(float64(a.burst()) / a.config.App.LoginThrottle.RPS * float64(time.Second))
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// clientIP is the connection address. Proxy headers only count once RealIP has
// rewritten RemoteAddr for a trusted proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

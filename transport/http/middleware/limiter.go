package middleware

import (
	"net/http"
	"net"
	"strconv"
	"sync"
	"time"

	"mykuliah/shared"
	"mykuliah/shared/constant"
	"mykuliah/transport/http/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"

	// idle visitors are dropped from the memory store after this long
	visitorTTL = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterStore struct {
	limiters map[string]*visitor
	mu       sync.Mutex
	swept    time.Time
}

// allow reports whether key may proceed and how many requests it has left in the window.
func (s *limiterStore) allow(key string, maxReqs, windowSecs int, now time.Time) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.swept) > visitorTTL {
		for k, v := range s.limiters {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(s.limiters, k)
			}
		}

		s.swept = now
	}

	v, ok := s.limiters[key]
	if !ok {
		every := time.Duration(windowSecs) * time.Second / time.Duration(max(maxReqs, 1))
		v = &visitor{limiter: rate.NewLimiter(rate.Every(every), maxReqs)}
		s.limiters[key] = v
	}

	v.lastSeen = now

	if !v.limiter.AllowN(now, 1) {
		return false, 0
	}

	return true, max(0, int(v.limiter.TokensAt(now)))
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			var (
				allowed   bool
				remaining int
			)

			if a.config.App.RateLimiter.Backend == constant.RateLimiterBackendRedis {
				var ok bool

				allowed, remaining, ok = a.redisAllow(r, cacheKey, maxReqs, windowSecs)
				if !ok {
					// If cache fails, allow the request to continue
					next.ServeHTTP(w, r)

					return
				}
			} else {
				allowed, remaining = a.limiters.allow(cacheKey, maxReqs, windowSecs, time.Now())
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(remaining))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if !allowed {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// redisAllow counts requests per fixed window in redis. ok is false when redis could not be used.
func (a *appMiddleware) redisAllow(r *http.Request, cacheKey string, maxReqs, windowSecs int) (allowed bool, remaining int, ok bool) {
	count, err := a.cache.Incr(r.Context(), cacheKey, time.Duration(windowSecs)*time.Second)
	if err != nil {
		log.Warn().Err(err).Msg("rate limiter cache unavailable")

		return false, 0, false
	}

	if count > int64(maxReqs) {
		return false, 0, true
	}

	return true, maxReqs - int(count), true
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// clientIP keys on the connection address. Forwarded headers are only honoured
// through chi's RealIP, which rewrites RemoteAddr when APP_TRUST_PROXY is set.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

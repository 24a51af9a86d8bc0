package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fractalglobal/fgc/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

var (
	// StrictLimit guards credential endpoints (token, login, password reset).
	// Override with: RATELIMIT_STRICT_REQUESTS, RATELIMIT_STRICT_WINDOW_SEC, RATELIMIT_STRICT_BURST
	StrictLimit = RateLimitConfig{
		RequestsPerWindow: 10,
		Window:            time.Minute,
		Burst:             10,
	}

	// LenientLimit guards unauthenticated read endpoints such as health checks.
	// Override with: RATELIMIT_LENIENT_REQUESTS, RATELIMIT_LENIENT_WINDOW_SEC, RATELIMIT_LENIENT_BURST
	LenientLimit = RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
}

// ParseRateLimitFromEnv reads rate limit configuration from environment variables
// following the pattern RATELIMIT_{prefix}_{REQUESTS|WINDOW_SEC|BURST}.
// Missing, malformed or non-positive values keep the default.
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		config.RequestsPerWindow = n
	}
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		config.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_BURST"); ok {
		config.Burst = n
	}

	return config
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	return n, err == nil && n > 0
}

// KeyExtractor extracts the key requests are grouped by for rate limiting.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP address from the request.
// It handles X-Forwarded-For and X-Real-IP headers for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// AppIDKeyExtractor keys on the client application of the verified token.
// Returns empty string before authentication.
func AppIDKeyExtractor(r *http.Request) string {
	return AppIDFromContext(r.Context())
}

// BasicAuthKeyExtractor keys on the client ID presented in Basic auth.
func BasicAuthKeyExtractor(r *http.Request) string {
	id, _, _ := r.BasicAuth()
	return id
}

// CompositeKeyExtractor combines multiple key extractors with a separator,
// skipping the ones that produce nothing.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// limiterSet manages one token bucket per key.
type limiterSet struct {
	limiters    sync.Map // map[string]*rate.Limiter
	mu          sync.Mutex
	lastCleanup time.Time
}

func (ls *limiterSet) get(key string, limit rate.Limit, burst int) *rate.Limiter {
	if l, ok := ls.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}

	actual, _ := ls.limiters.LoadOrStore(key, rate.NewLimiter(limit, burst))
	ls.maybeCleanup()
	return actual.(*rate.Limiter)
}

// maybeCleanup drops limiters whose buckets are full, i.e. idle keys.
func (ls *limiterSet) maybeCleanup() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if time.Since(ls.lastCleanup) < 5*time.Minute {
		return
	}
	ls.lastCleanup = time.Now()

	ls.limiters.Range(func(key, value any) bool {
		l := value.(*rate.Limiter)
		if l.Tokens() >= float64(l.Burst()) {
			ls.limiters.Delete(key)
		}
		return true
	})
}

func writeRateLimited(w http.ResponseWriter, r *http.Request, l *rate.Limiter, key string, limit int, window time.Duration) {
	// Peek at when the next token lands without consuming it.
	res := l.Reserve()
	delay := res.Delay()
	res.Cancel()

	retryAfter := max(int(delay.Seconds()), 1)
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	w.Header().Set("X-RateLimit-Window", window.String())

	slogx.FromContext(r.Context()).Warn("rate limit exceeded",
		"key", key,
		"endpoint", r.URL.Path,
		"retry_after", retryAfter,
	)

	WriteMessage(w, http.StatusTooManyRequests, "too many requests, please try again later")
}

// RateLimitMiddleware creates a rate limiting middleware with a fixed
// configuration. Requests whose key cannot be extracted pass through.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	limit := rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds())
	ls := &limiterSet{lastCleanup: time.Now()}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyExtractor(r)
			if key == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			l := ls.get(key, limit, config.Burst)
			if !l.Allow() {
				writeRateLimited(w, r, l, key, config.RequestsPerWindow, config.Window)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP creates a rate limiter that limits by IP address only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RequestLimitLookup returns the hourly request allowance of a client
// application. Zero means unlimited.
type RequestLimitLookup func(appID string) int

// RateLimitByApp enforces each client application's own hourly request
// limit. It must run after AuthnMiddleware.
func RateLimitByApp(lookup RequestLimitLookup) Middleware {
	ls := &limiterSet{lastCleanup: time.Now()}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appID := AppIDFromContext(r.Context())
			perHour := 0
			if appID != "" {
				perHour = lookup(appID)
			}
			if perHour <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			l := ls.get(appID, rate.Every(time.Hour/time.Duration(perHour)), perHour)
			if !l.Allow() {
				writeRateLimited(w, r, l, appID, perHour, time.Hour)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

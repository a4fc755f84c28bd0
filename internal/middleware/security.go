package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/pkg/clientip"
)

const (
	headerXContentTypeOptions     = "X-Content-Type-Options"
	headerXFrameOptions           = "X-Frame-Options"
	headerXXSSProtection          = "X-XSS-Protection"
	headerContentSecurityPolicy   = "Content-Security-Policy"
	headerStrictTransportSecurity = "Strict-Transport-Security"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerXContentTypeOptions, "nosniff")
		w.Header().Set(headerXFrameOptions, "DENY")
		w.Header().Set(headerXXSSProtection, "1; mode=block")
		w.Header().Set(headerContentSecurityPolicy, "default-src 'self'")
		w.Header().Set(headerStrictTransportSecurity, "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// HostCheck returns 403 when r.Host does not match allowedHost.
// allowedHost should be the bare hostname without scheme or port.
func HostCheck(allowedHost string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowedHost == "" {
				next.ServeHTTP(w, r)
				return
			}
			reqHost := r.Host
			if host, _, err := net.SplitHostPort(reqHost); err == nil {
				reqHost = host
			}
			if !strings.EqualFold(strings.TrimSpace(reqHost), strings.TrimSpace(allowedHost)) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte("Forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterTTL             = 30 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// ipLimiter keeps one token bucket per client IP and forgets idle ones.
type ipLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	entries map[string]*limiterEntry
	cleanup sync.Once
}

func newIPLimiter(limit rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{limit: limit, burst: burst, entries: make(map[string]*limiterEntry)}
}

func (l *ipLimiter) allow(ip string) bool {
	l.cleanup.Do(func() { go l.sweep() })

	l.mu.Lock()
	e, ok := l.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[ip] = e
	}
	e.lastUse = time.Now()
	l.mu.Unlock()

	return e.limiter.Allow()
}

func (l *ipLimiter) sweep() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for ip, e := range l.entries {
			if now.Sub(e.lastUse) > limiterTTL {
				delete(l.entries, ip)
			}
		}
		l.mu.Unlock()
	}
}

func tooManyRequests(w http.ResponseWriter, r *http.Request, ip, message string) {
	logger.FromRequest(r).Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("rate limited")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}

// RateLimit limits each IP to rps requests per second with the given burst.
func RateLimit(rps float64, burst int, clientIP clientip.Resolver) func(http.Handler) http.Handler {
	limiter := newIPLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !limiter.allow(ip) {
				tooManyRequests(w, r, ip, "Too many requests. Please slow down.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Credential endpoints get a stricter bucket: 1 request per 5s, burst 2.
const (
	loginRateLimitEvery = 5 * time.Second
	loginRateLimitBurst = 2
)

var loginPaths = map[string]bool{
	"/api/auth/login":        true,
	"/api/auth/register":     true,
	"/api/settings/password": true,
}

// LoginRateLimit applies the stricter limit to credential routes only.
func LoginRateLimit(clientIP clientip.Resolver) func(http.Handler) http.Handler {
	limiter := newIPLimiter(rate.Every(loginRateLimitEvery), loginRateLimitBurst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !loginPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			ip := clientIP(r)
			if !limiter.allow(ip) {
				tooManyRequests(w, r, ip, "Too many login attempts. Please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ProductionSecurity returns middlewares for production: SecurityHeaders, HostCheck, RateLimit, LoginRateLimit.
func ProductionSecurity(allowedHost string, trustProxy bool) []func(http.Handler) http.Handler {
	clientIP := clientip.For(trustProxy)
	return []func(http.Handler) http.Handler{
		SecurityHeaders,
		HostCheck(allowedHost),
		RateLimit(5, 20, clientIP),
		LoginRateLimit(clientIP),
	}
}

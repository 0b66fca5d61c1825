package http

import (
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, retryAfter := limiter.Allow(ip)
			if !allowed {
				zerolog.Ctx(r.Context()).Warn().Str("client", ip).Msg("rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				writeError(w, r, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port when present. RemoteAddr only reflects forwarding
// headers when the router trusts a proxy and runs chi's RealIP.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

package handlers

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/camden-git/filecheckbackend/ratelimit"
	"github.com/camden-git/filecheckbackend/utils"
)

// ClientIP returns the caller's IP for rate-limit keying. chi's RealIP
// middleware has already folded X-Real-IP / X-Forwarded-For into RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit wraps a handler with a per-IP token bucket for one endpoint.
func RateLimit(limiter *ratelimit.Limiter, limit ratelimit.Limit, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := endpoint + ":" + ClientIP(r)
		res := limiter.Allow(key, limit)

		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", res.Remaining))
		w.Header().Set("X-RateLimit-Reset", res.ResetAt.UTC().Format(time.RFC3339))

		if !res.Allowed {
			WriteAPIError(w, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please try again later.")
			return
		}
		next(w, r)
	}
}

// SubdomainRedirect issues a permanent redirect from {slug}.<baseDomain> to
// the canonical page URL, preserving the query string. vanity subdomains are
// share links; the canonical URL is what search engines should index.
func SubdomainRedirect(baseDomain string, next http.Handler) http.Handler {
	if baseDomain == "" {
		return next
	}
	suffix := "." + baseDomain

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hostname := r.Host
		if h, _, err := net.SplitHostPort(hostname); err == nil {
			hostname = h
		}

		if strings.HasSuffix(hostname, suffix) && !strings.HasPrefix(hostname, "www.") {
			subdomain := strings.TrimSuffix(hostname, suffix)
			if utils.IsValidSlug(subdomain) {
				target := fmt.Sprintf("https://%s/%s", baseDomain, subdomain)
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				log.Printf("redirecting subdomain %s to %s", hostname, target)
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mxchen/qrpanel/models"
	"github.com/mxchen/qrpanel/services"
)

// AccessLogger middleware records an "access" audit row for every
// request outside the excluded paths. The operation endpoints are
// excluded because their handlers write their own specific actions.
func AccessLogger(audit services.AuditService, exclude ...string) func(http.Handler) http.Handler {
	excluded := make(map[string]struct{}, len(exclude))
	for _, path := range exclude {
		excluded[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if _, ok := excluded[r.URL.Path]; !ok {
				// Best-effort: the audit service swallows store failures
				audit.Log(ClientIP(r), models.ActionAccess, fmt.Sprintf("visited %s", r.URL.Path))
			}
		})
	}
}

// ClientIP extracts the client IP from a request, checking X-Forwarded-For first
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

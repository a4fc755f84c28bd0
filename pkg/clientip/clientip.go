// Package clientip picks the address a request came from, for rate limiting and logging.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolver returns the client IP of r.
type Resolver func(r *http.Request) string

// For returns Forwarded when the server sits behind a trusted proxy and
// RealClientIP otherwise. Proxy headers are client-controlled, so they are
// only honoured when trustProxy is set.
func For(trustProxy bool) Resolver {
	if trustProxy {
		return Forwarded
	}
	return RealClientIP
}

// RealClientIP returns the host part of r.RemoteAddr.
func RealClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}

// Forwarded returns the first X-Forwarded-For hop, then X-Real-IP, then RemoteAddr.
func Forwarded(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}
	return RealClientIP(r)
}

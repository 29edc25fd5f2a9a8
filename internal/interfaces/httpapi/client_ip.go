package httpapi

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const clientIPContextKey contextKey = "client_ip"

// ClientIP stores the resolved caller address in the request context for the
// rate limiters and request logs.
func ClientIP(trustedProxies []netip.Prefix, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := resolveClientIP(r, trustedProxies)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIPContextKey, ip)))
	})
}

// requestClientIP falls back to the socket address when the ClientIP
// middleware did not run.
func requestClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPContextKey).(string); ok {
		return ip
	}
	return resolveClientIP(r, nil)
}

// resolveClientIP uses the socket address unless the peer is a trusted proxy.
// Behind a trusted proxy, Fly-Client-IP wins, then the right-most
// X-Forwarded-For hop that is not itself a trusted proxy, then X-Real-IP.
func resolveClientIP(r *http.Request, trustedProxies []netip.Prefix) string {
	remote := normalizeIP(r.RemoteAddr)
	if remote == "" || !isTrustedProxy(remote, trustedProxies) {
		return remote
	}

	if ip := normalizeIP(r.Header.Get("Fly-Client-IP")); ip != "" {
		return ip
	}
	if ip := forwardedClientIP(r.Header.Values("X-Forwarded-For"), trustedProxies); ip != "" {
		return ip
	}
	if ip := normalizeIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return remote
}

func forwardedClientIP(values []string, trustedProxies []netip.Prefix) string {
	var hops []string
	for _, value := range values {
		for _, hop := range strings.Split(value, ",") {
			if ip := normalizeIP(hop); ip != "" {
				hops = append(hops, ip)
			}
		}
	}
	for i := len(hops) - 1; i >= 0; i-- {
		if !isTrustedProxy(hops[i], trustedProxies) {
			return hops[i]
		}
	}
	if len(hops) > 0 {
		return hops[0]
	}
	return ""
}

func isTrustedProxy(ip string, trustedProxies []netip.Prefix) bool {
	if len(trustedProxies) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}

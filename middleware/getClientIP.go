package middleware

import (
	"net"
	"strings"

	"shareit/config"

	"github.com/gin-gonic/gin"
)

// getClientIP returns the address used for rate limiting and request logs.
// Forwarded headers are only honoured when TRUST_PROXY_HEADERS is set.
func getClientIP(c *gin.Context) string {
	if config.AppConfig.TrustProxyHeaders {
		if ip := forwardedIP(c); ip != "" {
			return ip
		}
	}
	return remoteHost(c.Request.RemoteAddr)
}

// forwardedIP takes the first hop of X-Forwarded-For, then X-Real-IP.
func forwardedIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return strings.TrimSpace(c.GetHeader("X-Real-IP"))
}

func remoteHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// subjectKey is the context key under which the authenticated subject
// is stored for handlers.
const subjectKey = "auth.subject"

// RequestLogger returns a middleware that logs one line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// Auth returns a middleware that rejects requests without a valid
// bearer token before any handler logic runs.
func Auth(verifier contracts.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			// No bearer scheme present at all.
			token = ""
		}

		subject, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// CORS returns a middleware implementing the origin allow-list policy:
// requests without an Origin header (same-origin and server-to-server
// calls) get a wildcard allow; origins matching a configured prefix
// get echoed back, with per-route methods advertised on preflight;
// anything else is forbidden. The allow-list is read per request so
// configuration hot reloads take effect immediately.
func CORS(allowedOrigins func() []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length")

		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Header("Access-Control-Allow-Origin", "*")
			if c.Request.Method == http.MethodOptions {
				c.Header("Access-Control-Allow-Methods", allowedMethods(c.Request.URL.Path))
				c.AbortWithStatus(http.StatusOK)
				return
			}
			c.Next()
			return
		}

		allowed := false
		for _, prefix := range allowedOrigins() {
			if strings.HasPrefix(origin, prefix) {
				allowed = true
				break
			}
		}
		if !allowed {
			c.String(http.StatusForbidden, "Access forbidden from this origin.")
			c.Abort()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", allowedMethods(c.Request.URL.Path))
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// allowedMethods advertises the method set of an endpoint on preflight.
// Matching is on the raw request path: preflights are handled before
// routing, so no route pattern is available.
func allowedMethods(path string) string {
	switch {
	case path == productsPath || path == categoriesPath:
		return "GET, POST, OPTIONS"
	case path == productsPath+"/search":
		return "GET, OPTIONS"
	case strings.HasPrefix(path, productsPath+"/"), strings.HasPrefix(path, categoriesPath+"/"):
		return "GET, PUT, DELETE, OPTIONS"
	default:
		return "GET"
	}
}

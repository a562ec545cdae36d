package server

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"websim2api/internal/core"

	"github.com/gin-gonic/gin"
)

// MaxBodySize is the maximum allowed request body size (50MB).
const MaxBodySize = 50 << 20

func (s *Server) maxBodySizeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)
		c.Next()
	}
}

func (s *Server) isValidClientKey(providedKey string) bool {
	providedBytes := []byte(providedKey)
	for validKey := range s.validClientKeys {
		validBytes := []byte(validKey)
		if len(providedBytes) == len(validBytes) && subtle.ConstantTimeCompare(providedBytes, validBytes) == 1 {
			return true
		}
	}
	return false
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowOrigin := os.Getenv("CORS_ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", core.CORSMaxAge)

		// Preflight succeeds on any path, before auth runs
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authenticateClient checks the Bearer token against the configured client
// keys. With no keys configured the gate is open and every request passes.
// Missing and mismatched credentials both answer 401 so probes cannot tell
// a bad key from no key.
func (s *Server) authenticateClient(c *gin.Context) {
	if len(s.validClientKeys) == 0 {
		return
	}

	authHeader := c.GetHeader(core.HeaderAuthorization)
	if authHeader != "" && strings.HasPrefix(authHeader, core.AuthBearerPrefix) {
		token := strings.TrimPrefix(authHeader, core.AuthBearerPrefix)
		if s.isValidClientKey(token) {
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
	c.Abort()
}

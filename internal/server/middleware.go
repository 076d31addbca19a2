package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	userdomain "github.com/tapetashop/tapeta/internal/user/domain"
	"go.uber.org/zap"
)

const claimsKey = "auth_claims"

// RequestLogger logs one line per request with safe fields.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if lastErr := c.Errors.Last(); lastErr != nil {
			fields = append(fields, zap.Error(lastErr.Err))
			log.Warn("request failed", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

// AuthRequired validates the bearer token and, when roles are given,
// requires the caller to hold one of them.
func (s *Server) AuthRequired(roles ...userdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, err := s.tokens.ParseAccess(parts[1])
		if err != nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		if len(roles) > 0 && !hasRole(userdomain.Role(claims.Role), roles) {
			AbortWithError(c, ErrForbidden)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func hasRole(role userdomain.Role, allowed []userdomain.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/Campus-Events-Management/Management-BookingService/internal/identity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Auth validates the bearer token and stores its claims for the identity
// resolver. Everything behind it can assume a verified claim set.
func Auth(secret string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "Authorization required"},
			)
			return
		}

		token, err := jwt.Parse(
			strings.TrimPrefix(header, "Bearer "),
			func(t *jwt.Token) (any, error) { return []byte(secret), nil },
			jwt.WithValidMethods([]string{"HS256"}),
		)
		if err != nil || !token.Valid {
			log.Debug("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "Invalid or expired token"},
			)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "Invalid or expired token"},
			)
			return
		}

		c.Set(identity.ClaimsContextKey, identity.Claims(claims))
		c.Next()
	}
}

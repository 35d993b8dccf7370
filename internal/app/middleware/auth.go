package middleware

import (
	"errors"
	"net/http"
	"strings"
	authService "wallpost/internal/service/auth"
	"wallpost/pkg/logger"
	"wallpost/pkg/model"

	"github.com/gin-gonic/gin"
)

// userKey is the gin context key holding the authenticated *model.User.
const userKey = "user"

// TokenAuth gates a route on a valid bearer token. The Authorization header
// must be exactly `Token <value>`: any other scheme word, a missing header or
// an empty value is rejected before the token authority is consulted.
func TokenAuth(authSvc authService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		scheme, value, found := strings.Cut(header, " ")
		if !found || scheme != "Token" || value == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := authSvc.ValidateToken(c.Request.Context(), value)
		if err != nil {
			// expired and unknown tokens are indistinguishable to the
			// client; anything else is a store failure, not a bad token
			if errors.Is(err, authService.ErrUnauthorized) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			logger.Error(err, "failed to validate token")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// GetUser returns the authenticated user set by TokenAuth.
func GetUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*model.User)
	return user, ok
}

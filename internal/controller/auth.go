package controller

import (
	"errors"
	"net/http"
	"wallpost/internal/app/middleware"
	authService "wallpost/internal/service/auth"
	"wallpost/pkg/logger"
	"wallpost/pkg/model"

	"github.com/gin-gonic/gin"
)

// Login handles user authentication. The payload has already passed schema
// validation.
func (ctrl *controller) Login(c *gin.Context) {
	req := &model.LoginRequest{
		Username: middleware.PayloadString(c, "username"),
		Password: middleware.PayloadString(c, "password"),
	}

	token, err := ctrl.authService.Authenticate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, authService.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error(err, "failed to authenticate user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	logger.Infof("user %d logged in", token.UserID)
	c.JSON(http.StatusOK, token.Grant())
}

// RefreshToken bumps the validity of an existing token by 60 minutes.
func (ctrl *controller) RefreshToken(c *gin.Context) {
	req := &model.RefreshRequest{
		Token: middleware.PayloadString(c, "token"),
	}

	token, err := ctrl.authService.RenewToken(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, authService.ErrTokenNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error(err, "failed to renew token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	logger.Infof("token renewed for user %d", token.UserID)
	c.JSON(http.StatusOK, token.Grant())
}

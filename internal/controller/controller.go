package controller

import (
	authService "wallpost/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// ControllerProvider defines the auth controller interface
type ControllerProvider interface {
	Login(c *gin.Context)
	RefreshToken(c *gin.Context)
}

// controller implements the controller interface
type controller struct {
	authService authService.Service
}

// NewController creates a new controller instance
func NewController(authService authService.Service) ControllerProvider {
	return &controller{
		authService: authService,
	}
}

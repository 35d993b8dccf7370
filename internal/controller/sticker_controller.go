package controller

import (
	"errors"
	"net/http"
	"strconv"
	"wallpost/internal/app/middleware"
	stickerService "wallpost/internal/service/sticker"
	"wallpost/pkg/logger"
	"wallpost/pkg/model"

	"github.com/gin-gonic/gin"
)

// StickerController handles sticker-related HTTP requests
type StickerController struct {
	stickerService stickerService.Service
}

// NewStickerController creates a new sticker controller
func NewStickerController(stickerService stickerService.Service) *StickerController {
	return &StickerController{
		stickerService: stickerService,
	}
}

// List handles listing all stickers on the wall
func (sc *StickerController) List(c *gin.Context) {
	stickers, err := sc.stickerService.List(c.Request.Context())
	if err != nil {
		logger.Error(err, "failed to list stickers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stickers)
}

// Get handles fetching a single sticker
func (sc *StickerController) Get(c *gin.Context) {
	id, ok := stickerID(c)
	if !ok {
		return
	}

	sticker, err := sc.stickerService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, stickerService.ErrStickerNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error(err, "failed to get sticker")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, sticker)
}

// Create handles adding a sticker to the wall
func (sc *StickerController) Create(c *gin.Context) {
	// resolved by the auth middleware
	user, ok := middleware.GetUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	req := stickerRequest(c)

	sticker, err := sc.stickerService.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error(err, "failed to create sticker")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	logger.Infof("sticker %d created by %s", sticker.ID, user.Username)
	c.JSON(http.StatusCreated, sticker)
}

// Update handles replacing a sticker's fields. It answers 201 on success,
// matching the create path; clients depend on that status.
func (sc *StickerController) Update(c *gin.Context) {
	id, ok := stickerID(c)
	if !ok {
		return
	}

	req := stickerRequest(c)

	sticker, err := sc.stickerService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, stickerService.ErrStickerNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error(err, "failed to update sticker")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, sticker)
}

// Delete handles removing a sticker from the wall
func (sc *StickerController) Delete(c *gin.Context) {
	id, ok := stickerID(c)
	if !ok {
		return
	}

	err := sc.stickerService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, stickerService.ErrStickerNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error(err, "failed to delete sticker")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// stickerID parses the :id path parameter. A non-numeric id can never match
// a row, so it answers 404 directly.
func stickerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// stickerRequest rebuilds the typed request from the validated payload.
func stickerRequest(c *gin.Context) *model.StickerRequest {
	return &model.StickerRequest{
		Title:       middleware.PayloadString(c, "title"),
		Description: middleware.PayloadString(c, "description"),
	}
}

package handlers

import (
	"net/http"

	catalogRepo "lstours/database/repository/catalog"
	"lstours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the static page content (services, testimonials).
type ContentHandler struct {
	Repo   catalogRepo.ContentRepository
	Logger *zap.Logger
}

func NewContentHandler(repo catalogRepo.ContentRepository, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{Repo: repo, Logger: logger}
}

// GetServices handles GET /api/content/services.
func (h *ContentHandler) GetServices(c *gin.Context) {
	items, err := h.Repo.Services(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetServices: fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTestimonials handles GET /api/content/testimonials.
func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	items, err := h.Repo.Testimonials(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetTestimonials: fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch testimonials", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

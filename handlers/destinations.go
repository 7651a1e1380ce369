package handlers

import (
	"net/http"

	"lstours/services/catalog"
	"lstours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DestinationHandler serves the destination surface.
type DestinationHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewDestinationHandler(svc catalog.CatalogService, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{Catalog: svc, Logger: logger}
}

// ListDestinations handles GET /api/destinations.
func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	items, err := h.Catalog.Destinations(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListDestinations: fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch destinations", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDestinationBySlug handles GET /api/destinations/slug/:slug.
func (h *DestinationHandler) GetDestinationBySlug(c *gin.Context) {
	slug := c.Param("slug")
	dest, err := h.Catalog.DestinationBySlug(c.Request.Context(), slug)
	if err != nil {
		h.Logger.Error("GetDestinationBySlug: lookup failed", zap.String("slug", slug), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch destination", err.Error())
		return
	}
	if dest == nil {
		utils.JSONError(c, http.StatusNotFound, "destination not found", slug)
		return
	}
	c.JSON(http.StatusOK, dest)
}

// GetDestinationsByRegion handles GET /api/destinations/region/:region.
func (h *DestinationHandler) GetDestinationsByRegion(c *gin.Context) {
	region := c.Param("region")
	items, err := h.Catalog.DestinationsByRegion(c.Request.Context(), region)
	if err != nil {
		h.Logger.Error("GetDestinationsByRegion: fetch failed", zap.String("region", region), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch destinations", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"lstours/models"
	"lstours/services/catalog"
	"lstours/services/itinerary"
	"lstours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PackageHandler serves the tour package surface.
type PackageHandler struct {
	Catalog catalog.CatalogService
	PerPage int
	Logger  *zap.Logger
}

func NewPackageHandler(svc catalog.CatalogService, perPage int, logger *zap.Logger) *PackageHandler {
	return &PackageHandler{Catalog: svc, PerPage: perPage, Logger: logger}
}

// ListPackages handles GET /api/packages. Filter dimensions are bound from
// comma-separated query parameters; absent parameters impose no constraint.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	filters := filtersFromQuery(c)

	items, err := h.Catalog.FilteredPackages(c.Request.Context(), filters)
	if err != nil {
		h.Logger.Error("ListPackages: failed to fetch packages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch packages", err.Error())
		return
	}

	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", h.PerPage)
	paged := catalog.Paginate(items, page, perPage)

	c.JSON(http.StatusOK, gin.H{
		"items":      paged,
		"total":      len(items),
		"page":       page,
		"perPage":    perPage,
		"totalPages": totalPages(len(items), perPage),
	})
}

// GetPackageBySlug handles GET /api/packages/slug/:slug.
func (h *PackageHandler) GetPackageBySlug(c *gin.Context) {
	slug := c.Param("slug")
	pkg, err := h.Catalog.PackageBySlug(c.Request.Context(), slug)
	if err != nil {
		h.Logger.Error("GetPackageBySlug: lookup failed", zap.String("slug", slug), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package", err.Error())
		return
	}
	if pkg == nil {
		utils.JSONError(c, http.StatusNotFound, "package not found", slug)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GetFeaturedPackages handles GET /api/packages/featured.
func (h *PackageHandler) GetFeaturedPackages(c *gin.Context) {
	items, err := h.Catalog.FeaturedPackages(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetFeaturedPackages: fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch featured packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPackagesByRegion handles GET /api/packages/region/:region.
func (h *PackageHandler) GetPackagesByRegion(c *gin.Context) {
	region := c.Param("region")
	items, err := h.Catalog.PackagesByRegion(c.Request.Context(), region)
	if err != nil {
		h.Logger.Error("GetPackagesByRegion: fetch failed", zap.String("region", region), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPackageItinerary handles GET /api/packages/slug/:slug/itinerary,
// returning the derived day plans for every day of the package.
func (h *PackageHandler) GetPackageItinerary(c *gin.Context) {
	slug := c.Param("slug")
	pkg, err := h.Catalog.PackageBySlug(c.Request.Context(), slug)
	if err != nil {
		h.Logger.Error("GetPackageItinerary: lookup failed", zap.String("slug", slug), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package", err.Error())
		return
	}
	if pkg == nil {
		utils.JSONError(c, http.StatusNotFound, "package not found", slug)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slug": pkg.Slug,
		"days": itinerary.DerivePlans(*pkg),
	})
}

// filtersFromQuery binds a FilterState from query parameters. Malformed
// values degrade to the default for their dimension rather than erroring.
func filtersFromQuery(c *gin.Context) models.FilterState {
	filters := models.DefaultFilterState()
	filters.Duration = csvQuery(c, "duration")
	filters.Regions = csvQuery(c, "regions")
	filters.TravelStyle = csvQuery(c, "style")
	filters.Interests = csvQuery(c, "interests")
	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		filters.PriceRange[0] = v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		filters.PriceRange[1] = v
	}
	if sort := c.Query("sort"); sort != "" {
		filters.SortBy = models.SortKey(sort)
	}
	return filters
}

func csvQuery(c *gin.Context, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func totalPages(total, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	return (total + perPage - 1) / perPage
}

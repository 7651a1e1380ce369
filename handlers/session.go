package handlers

import (
	"net/http"

	"lstours/models"
	"lstours/services/catalog"
	"lstours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler serves the session-scoped catalog view state.
type SessionHandler struct {
	State   *catalog.StateStore
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewSessionHandler(state *catalog.StateStore, svc catalog.CatalogService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{State: state, Catalog: svc, Logger: logger}
}

// SetFilters handles PUT /api/session/:sid/filters. Any filter change
// resets the session to page 1.
func (h *SessionHandler) SetFilters(c *gin.Context) {
	var update models.FilterUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.State.SetFilters(c.Param("sid"), update))
}

// ResetFilters handles DELETE /api/session/:sid/filters.
func (h *SessionHandler) ResetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.State.ResetFilters(c.Param("sid")))
}

// SetPage handles PUT /api/session/:sid/filters/page.
func (h *SessionHandler) SetPage(c *gin.Context) {
	var body struct {
		Page int `json:"page"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.State.SetPage(c.Param("sid"), body.Page))
}

// GetView handles GET /api/session/:sid/view: the session's filters applied
// to the catalog, paginated at the session's current page.
func (h *SessionHandler) GetView(c *gin.Context) {
	state := h.State.Get(c.Param("sid"))

	items, err := h.Catalog.FilteredPackages(c.Request.Context(), state.Filters)
	if err != nil {
		h.Logger.Error("GetView: failed to build view", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to build catalog view", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":      state,
		"items":      catalog.Paginate(items, state.CurrentPage, state.ItemsPerPage),
		"total":      len(items),
		"totalPages": totalPages(len(items), state.ItemsPerPage),
		"statuses":   h.Catalog.Statuses(),
	})
}
